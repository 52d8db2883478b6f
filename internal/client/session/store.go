// Package session holds the client's authentication state: at most one
// logged-in user at a time.
package session

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/loandesk/internal/client/models"
	"github.com/google/uuid"
)

// Verifier checks that a session token is still live.
type Verifier interface {
	Verify(token string) error
}

// Store is the authentication state. The zero value is not usable; create it
// with NewStore. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	user     *models.User
	verifier Verifier
}

// NewStore returns an empty store. When verifier is non-nil, a user whose
// token fails verification is treated as logged out.
func NewStore(verifier Verifier) *Store {
	return &Store{verifier: verifier}
}

// Login replaces the current user unconditionally. A user without an id gets
// a random UUID.
func (s *Store) Login(u models.User) models.User {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()

	return u
}

// Logout clears the current user.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// Current returns a copy of the logged-in user, or nil.
func (s *Store) Current() *models.User {
	s.mu.RLock()
	u := s.user
	s.mu.RUnlock()

	if u == nil {
		return nil
	}
	if !s.live(u) {
		s.expire(u)
		return nil
	}

	c := *u
	return &c
}

// HasRole reports whether a user is logged in and holds one of roles.
func (s *Store) HasRole(roles ...models.Role) bool {
	u := s.Current()
	return u != nil && slices.Contains(roles, u.Role)
}

func (s *Store) live(u *models.User) bool {
	if s.verifier == nil || u.Token == "" {
		return true
	}
	return s.verifier.Verify(u.Token) == nil
}

// expire drops u unless another Login has replaced it in the meantime.
func (s *Store) expire(u *models.User) {
	s.mu.Lock()
	if s.user == u {
		s.user = nil
	}
	s.mu.Unlock()
}
