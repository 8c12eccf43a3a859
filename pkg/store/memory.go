package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-process snapshot store for development and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	snaps map[string]*Snapshot
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snaps: make(map[string]*Snapshot)}
}

// Get retrieves a snapshot by id.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Snapshot, error) {
	s.mu.RLock()
	snap, ok := s.snaps[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if snap.IsExpired() {
		s.mu.Lock()
		delete(s.snaps, id)
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	return snap, nil
}

// Set stores a snapshot.
func (s *MemoryStore) Set(ctx context.Context, snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps[snap.ID] = snap
	return nil
}

// Delete removes a snapshot. Missing ids are ignored.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snaps, id)
	return nil
}

// List returns all live snapshots, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Snapshot, 0, len(s.snaps))
	for _, snap := range s.snaps {
		if !snap.IsExpired() {
			out = append(out, snap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Cleanup removes expired snapshots.
func (s *MemoryStore) Cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, snap := range s.snaps {
		if snap.IsExpired() {
			delete(s.snaps, id)
		}
	}
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
