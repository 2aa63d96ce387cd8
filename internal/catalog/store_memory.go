package catalog

import (
	"context"
	"sort"
	"sync"
)

// MemStore holds the catalog in a process-local map, seeded once at
// construction and read-only afterwards.
type MemStore struct {
	mu sync.RWMutex
	m  map[int]Car
}

func NewMemStore() *MemStore {
	s := &MemStore{m: make(map[int]Car)}
	for _, c := range SeedCars() {
		s.m[c.ID] = c
	}
	return s
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) List(ctx context.Context) ([]Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Car, 0, len(s.m))
	for _, c := range s.m {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) Get(ctx context.Context, id int) (Car, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.m[id]
	return c, ok, nil
}

func (s *MemStore) Featured(ctx context.Context) ([]Car, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Car, 0, len(all))
	for _, c := range all {
		if c.Featured {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MemStore) Filter(ctx context.Context, q FilterQuery) ([]Car, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Car, 0, len(all))
	for _, c := range all {
		if q.matches(c) {
			out = append(out, c)
		}
	}
	return out, nil
}
