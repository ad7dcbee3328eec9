// Package memory holds snapshots in process memory. It backs the demo
// mode, where the app runs without a backend, and doubles as the test
// stand-in for the live client.
package memory

import (
	"context"
	"sync"

	"waiswallet/internal/core"
)

// Store keeps a single snapshot guarded by a mutex. Reads hand out the
// stored value; because Snapshot is treated as immutable everywhere, no
// copy is taken.
type Store struct {
	mu   sync.RWMutex
	snap core.Snapshot
}

// NewStore creates a store seeded with the given snapshot.
func NewStore(snap core.Snapshot) *Store {
	return &Store{snap: snap}
}

// NewDemo creates a store seeded with the built-in demo dataset.
func NewDemo() *Store {
	return NewStore(DemoSnapshot())
}

// ReadSnapshot implements source.SnapshotReader.
func (s *Store) ReadSnapshot(ctx context.Context) (core.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return core.Snapshot{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, nil
}

// WriteSnapshot implements source.SnapshotWriter.
func (s *Store) WriteSnapshot(ctx context.Context, snap core.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	return nil
}
