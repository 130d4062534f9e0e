package service

import "sync"

// Credential holds the single active bearer token for this client instance.
// It is constructed at process start, read by the transport gateway through
// ports.CredentialSource, and written only by the session manager. The last
// write wins; writes are rare and user-triggered.
type Credential struct {
	mu    sync.RWMutex
	token string
}

func NewCredential() *Credential {
	return &Credential{}
}

// Token returns the current bearer token, or "" when no session is active.
func (c *Credential) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Credential) set(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Credential) clear() {
	c.set("")
}
