package ports

// CredentialSource is the read-only view of the bearer credential consumed
// by the transport gateway. An empty string means no session is active.
type CredentialSource interface {
	Token() string
}

// CredentialStore persists the credential across process restarts. The
// session manager is the sole writer.
type CredentialStore interface {
	// Load returns the stored token, or "" when none is stored.
	Load() (string, error)
	Save(token string) error
	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear() error
}
