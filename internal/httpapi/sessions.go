package httpapi

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// adminSessions tracks admin login tokens in memory. Tokens expire
// after the configured TTL; a server restart logs every admin out.
type adminSessions struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	ttl    time.Duration
	now    func() time.Time
}

func newAdminSessions(ttl time.Duration) *adminSessions {
	return &adminSessions{
		tokens: make(map[string]time.Time),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue mints a new admin session token.
func (s *adminSessions) Issue() string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = s.now().Add(s.ttl)
	s.prune()
	return token
}

// Valid reports whether the token is live, extending its expiry on use.
func (s *adminSessions) Valid(token string) bool {
	if token == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.tokens[token]
	if !ok {
		return false
	}
	if s.now().After(expiry) {
		delete(s.tokens, token)
		return false
	}
	s.tokens[token] = s.now().Add(s.ttl)
	return true
}

// Revoke deletes a token.
func (s *adminSessions) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// prune drops expired tokens. Caller holds the lock.
func (s *adminSessions) prune() {
	now := s.now()
	for token, expiry := range s.tokens {
		if now.After(expiry) {
			delete(s.tokens, token)
		}
	}
}
