package catalog

import "sync"

// Role distinguishes the two marketplace sides.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleFarmer   Role = "farmer"
)

// Session carries the authenticated identity for one client. The store and
// the API client receive a session explicitly rather than reading ambient
// auth state, and its lifecycle is bound to login/logout.
type Session struct {
	mu    sync.RWMutex
	email string
	role  Role
}

func NewSession(role Role) *Session {
	return &Session{role: role}
}

// Login binds the session to the given identity.
func (s *Session) Login(email string) {
	s.mu.Lock()
	s.email = email
	s.mu.Unlock()
}

// Logout clears the identity; the session object stays usable.
func (s *Session) Logout() {
	s.mu.Lock()
	s.email = ""
	s.mu.Unlock()
}

func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

func (s *Session) Role() Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// Active reports whether an identity is bound.
func (s *Session) Active() bool {
	return s.Email() != ""
}
