package service

import (
	"context"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/salonova/booking-client/internal/core/domain"
	"github.com/salonova/booking-client/internal/core/ports"
)

// SessionState is the session manager's lifecycle state.
type SessionState string

const (
	StateUnauthenticated SessionState = "unauthenticated"
	StateRestoring       SessionState = "restoring"
	StateAuthenticated   SessionState = "authenticated"
)

// SessionManager owns the authenticated identity and the credential. It is
// the sole writer of the stored credential; the transport gateway only reads
// it through ports.CredentialSource. A second login racing a first one is
// not queued; the last credential write wins.
type SessionManager struct {
	cred     *Credential
	gw       ports.AuthGateway
	store    ports.CredentialStore
	notifier ports.Notifier
	redirect ports.Redirector
	validate *payloadValidator
	log      zerolog.Logger

	mu       sync.Mutex
	state    SessionState
	identity *domain.Identity
}

func NewSessionManager(
	gw ports.AuthGateway,
	store ports.CredentialStore,
	cred *Credential,
	notifier ports.Notifier,
	redirect ports.Redirector,
	log zerolog.Logger,
) *SessionManager {
	return &SessionManager{
		cred:     cred,
		gw:       gw,
		store:    store,
		notifier: notifier,
		redirect: redirect,
		validate: newPayloadValidator(),
		log:      log,
		state:    StateUnauthenticated,
	}
}

// Restore rebuilds a session from the persisted credential at process start.
// The token is not validated against the server: a stale token surfaces as
// an ordinary API failure on first use, never as a special startup error.
// A minimal identity is derived from the token's unverified claims for
// display and role gating only.
func (m *SessionManager) Restore() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateRestoring

	token, err := m.store.Load()
	if err != nil {
		m.log.Warn().Err(err).Msg("credential store unreadable, starting unauthenticated")
		m.state = StateUnauthenticated
		return
	}
	if token == "" {
		m.state = StateUnauthenticated
		return
	}

	m.cred.set(token)
	id := m.identityFromToken(token)
	m.identity = &id
	m.state = StateAuthenticated
	m.log.Info().Str("email", id.Email).Str("type", string(id.Type)).Msg("session restored")
}

// Login authenticates against the remote API. On success the credential is
// stored durably, the identity derived, and the routing collaborator is
// asked for a role-based redirect. On any failure the session stays
// unauthenticated and exactly one user-facing error is reported.
func (m *SessionManager) Login(ctx context.Context, email, password string) bool {
	creds := ports.Credentials{Email: email, Password: password}
	if err := m.validate.Struct(creds); err != nil {
		m.notifier.Error(err.Error())
		return false
	}

	token, err := m.gw.Login(ctx, creds)
	if err != nil {
		m.log.Warn().Err(err).Str("email", email).Msg("login failed")
		m.notifier.Error("Login failed: " + err.Error())
		return false
	}

	id := m.identityFromToken(token)
	if id.Email == "" {
		id.Email = email
	}
	m.mu.Lock()
	m.adopt(token)
	m.identity = &id
	m.state = StateAuthenticated
	m.mu.Unlock()

	m.redirectByRole(id)
	m.notifier.Success("Successfully logged in")
	m.log.Info().Str("email", id.Email).Str("type", string(id.Type)).Msg("logged in")
	return true
}

// SignUp registers a new account. The server alone validates email
// uniqueness; the client only gates required fields.
func (m *SessionManager) SignUp(ctx context.Context, in ports.SignUpInput) bool {
	if err := m.validate.Struct(in); err != nil {
		m.notifier.Error(err.Error())
		return false
	}

	token, err := m.gw.SignUp(ctx, in)
	if err != nil {
		m.log.Warn().Err(err).Str("email", in.Email).Msg("registration failed")
		m.notifier.Error("Registration failed: " + err.Error())
		return false
	}

	id := domain.Identity{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Type:        in.Type,
		Status:      domain.UserStatusActive,
	}
	m.mu.Lock()
	m.adopt(token)
	m.identity = &id
	m.state = StateAuthenticated
	m.mu.Unlock()

	m.redirectByRole(id)
	m.notifier.Success("Account created successfully")
	return true
}

// Logout clears the credential and identity unconditionally. Calling it on
// an already-unauthenticated session is a no-op with the same outcome.
func (m *SessionManager) Logout() {
	m.mu.Lock()
	m.cred.clear()
	m.identity = nil
	m.state = StateUnauthenticated

	if err := m.store.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("failed to clear stored credential")
	}
	m.mu.Unlock()

	m.redirect.Redirect(ports.SurfaceLanding)
	m.notifier.Success("Successfully logged out")
}

// ChangePassword updates the account password. The session and credential
// are unaffected.
func (m *SessionManager) ChangePassword(ctx context.Context, oldPassword, newPassword string) bool {
	if oldPassword == "" || newPassword == "" {
		m.notifier.Error("old and new password are required")
		return false
	}
	if err := m.gw.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		m.notifier.Error("Failed to change password: " + err.Error())
		return false
	}
	m.notifier.Success("Password changed successfully")
	return true
}

// RequestPasswordReset asks the server to start a reset flow for email.
func (m *SessionManager) RequestPasswordReset(ctx context.Context, email string) bool {
	if err := m.gw.RequestPasswordReset(ctx, email); err != nil {
		m.notifier.Error("Failed to request password reset: " + err.Error())
		return false
	}
	m.notifier.Success("Password reset requested")
	return true
}

// State returns the current session state.
func (m *SessionManager) State() SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// IsAuthenticated reports whether a credential is active.
func (m *SessionManager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// Identity returns a copy of the cached identity, or false when no session
// is active.
func (m *SessionManager) Identity() (domain.Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.identity == nil {
		return domain.Identity{}, false
	}
	return *m.identity, true
}

// IsAdmin reports whether the active session may be offered operator
// controls. The server still enforces authorization on every call.
func (m *SessionManager) IsAdmin() bool {
	id, ok := m.Identity()
	return ok && id.IsAdmin()
}

// adopt makes token the active credential and persists it. A persistence
// failure does not abort the login: the session stays active in memory and
// simply will not survive a restart.
func (m *SessionManager) adopt(token string) {
	m.cred.set(token)
	if err := m.store.Save(token); err != nil {
		m.log.Warn().Err(err).Msg("failed to persist credential")
	}
}

func (m *SessionManager) redirectByRole(id domain.Identity) {
	if id.IsAdmin() {
		m.redirect.Redirect(ports.SurfaceAdmin)
		return
	}
	m.redirect.Redirect(ports.SurfaceClient)
}

// identityFromToken builds a minimal identity from the token's claims. The
// token is decoded without signature verification: the client never
// validates credential integrity, it trusts the server to reject stale or
// forged tokens on use. Unknown or missing claims degrade to the
// least-privileged USER type rather than guessing upward.
func (m *SessionManager) identityFromToken(token string) domain.Identity {
	id := domain.Identity{Type: domain.UserTypeUser, Status: domain.UserStatusActive}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		m.log.Debug().Err(err).Msg("credential is not a decodable JWT, using minimal identity")
		return id
	}

	if v, ok := claims["sub"].(string); ok {
		id.ID = v
	}
	if v, ok := claims["email"].(string); ok {
		id.Email = v
	}
	if v, ok := claims["first_name"].(string); ok {
		id.FirstName = v
	}
	if v, ok := claims["last_name"].(string); ok {
		id.LastName = v
	}
	if v, ok := claims["type"].(string); ok {
		if t, err := domain.ParseUserType(v); err == nil {
			id.Type = t
		} else {
			m.log.Debug().Str("type", v).Msg("unknown type claim, keeping USER")
		}
	}
	return id
}
