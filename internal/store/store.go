// Package store holds the process-local user list.
//
// It plays the role a repository layer would in a persistent app: the
// service layer talks to it, handlers never touch it directly. Contents
// live only in memory and are discarded on restart; writes to an
// existing ID simply replace the stored record (last write wins).
package store

import (
	"sync"
	"time"
)

// User is the stored representation of a user.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserStore is a mutex-guarded slice of users with an ID index.
//
// Echo serves requests concurrently, so the store must be safe for
// concurrent use even though clients get no ordering guarantee.
type UserStore struct {
	mu    sync.RWMutex
	users []User
	index map[string]int
}

// NewUserStore constructs an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{
		index: make(map[string]int),
	}
}

// List returns a snapshot of all users in insertion order.
//
// The returned slice is a copy; callers may not mutate stored records
// through it.
func (s *UserStore) List() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

// Get returns the user with the given ID, and whether it exists.
func (s *UserStore) Get(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return User{}, false
	}
	return s.users[i], true
}

// Add stores a user. If a user with the same ID already exists it is
// replaced in place, keeping its original position in the list.
func (s *UserStore) Add(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[u.ID]; ok {
		s.users[i] = u
		return
	}

	s.index[u.ID] = len(s.users)
	s.users = append(s.users, u)
}

// Len returns the number of stored users.
func (s *UserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
