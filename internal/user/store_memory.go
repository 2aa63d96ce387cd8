package user

import (
	"context"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

type MemStore struct {
	mu     sync.RWMutex
	byID   map[int]User
	byName map[string]int
	nextID int
}

func NewMemStore() *MemStore {
	return &MemStore{
		byID:   make(map[int]User),
		byName: make(map[string]int),
		nextID: 1,
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Create(ctx context.Context, username, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[username]; ok {
		return User{}, ErrUsernameExists
	}

	u := User{ID: s.nextID, Username: username, Hash: hash}
	s.nextID++
	s.byID[u.ID] = u
	s.byName[username] = u.ID
	return u, nil
}

func (s *MemStore) GetByID(ctx context.Context, id int) (User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	return u, ok, nil
}

func (s *MemStore) GetByUsername(ctx context.Context, username string) (User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[username]
	if !ok {
		return User{}, false, nil
	}
	u, ok := s.byID[id]
	return u, ok, nil
}
