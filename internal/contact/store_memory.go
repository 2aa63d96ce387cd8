package contact

import (
	"context"
	"sync"
)

// MemStore keeps submissions in process memory; a restart discards them.
type MemStore struct {
	mu          sync.Mutex
	submissions []Submission
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Add(ctx context.Context, sub Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = append(s.submissions, sub)
	return nil
}

func (s *MemStore) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.submissions), nil
}
