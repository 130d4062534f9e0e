package ports

// Surface identifies a navigation target owned by the routing collaborator.
type Surface string

const (
	SurfaceLanding Surface = "landing"
	SurfaceAdmin   Surface = "admin"
	SurfaceClient  Surface = "client"
)

// Redirector is implemented by the routing collaborator. The session
// manager requests a surface change after login and logout.
type Redirector interface {
	Redirect(target Surface)
}

// Notifier delivers non-blocking user-facing notifications.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Confirmer obtains explicit user assent before destructive actions.
type Confirmer interface {
	Confirm(prompt string) bool
}
