// Package session holds the admin bearer token for the lifetime of the
// process. The token is never written to disk; losing the process loses the
// session, which matches the tab-lifetime storage of the site it fronts.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// now is a test seam.
var now = time.Now

// Session is the auth context for admin-scoped calls. Expiry policy lives
// here, not in the HTTP layer: the transport only reports that the server
// rejected the token, and Session decides who gets told.
type Session struct {
	mu       sync.Mutex
	token    string
	nextId   int64
	onExpire map[int64]func()
}

func New() *Session {
	return &Session{onExpire: make(map[int64]func())}
}

// SetToken installs a freshly issued token.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Token returns the current token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsValid reports whether a token is present and, when it is a JWT with an
// exp claim, not yet past it. The claim is read without signature
// verification: the server remains authoritative, this only spares the user
// a round trip that is certain to fail.
func (s *Session) IsValid() bool {
	tok := s.Token()
	if tok == "" {
		return false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(tok, jwt.MapClaims{})
	if err != nil {
		// Opaque tokens are accepted as-is.
		return true
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return now().Before(exp.Time)
}

// OnExpire registers a handler invoked when the session is invalidated.
// The returned cancel func must be called on consumer teardown.
func (s *Session) OnExpire(handler func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextId
	s.nextId++
	s.onExpire[id] = handler

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.onExpire, id)
	}
}

// Invalidate clears the token and notifies expiry handlers. Called when the
// server rejects the token or on explicit logout.
func (s *Session) Invalidate() {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return
	}
	s.token = ""
	handlers := make([]func(), 0, len(s.onExpire))
	for _, h := range s.onExpire {
		handlers = append(handlers, h)
	}
	s.mu.Unlock()

	for _, h := range handlers {
		h()
	}
}
