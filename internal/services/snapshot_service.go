// Package services composes sources, caches, and the core computations
// into the operations the HTTP handlers and the worker call.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"waiswallet/internal/cache"
	"waiswallet/internal/core"
	"waiswallet/internal/source"
)

const snapshotCacheKey = "snapshot"

// SnapshotService hands out the current snapshot, keeping a short-lived
// cached copy in front of the configured source so every page render does
// not hit the backend or the database.
type SnapshotService struct {
	reader source.SnapshotReader
	cache  *cache.LRUCache[core.Snapshot]
}

func NewSnapshotService(reader source.SnapshotReader, ttl time.Duration) *SnapshotService {
	return &SnapshotService{
		reader: reader,
		cache:  cache.NewLRUCache[core.Snapshot](1, ttl),
	}
}

// Current returns the snapshot all views render from.
func (s *SnapshotService) Current(ctx context.Context) (core.Snapshot, error) {
	if snap, ok := s.cache.Get(snapshotCacheKey); ok {
		return snap, nil
	}

	snap, err := s.reader.ReadSnapshot(ctx)
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	s.cache.Set(snapshotCacheKey, snap)
	slog.DebugContext(ctx, "Snapshot cache refilled",
		"transactions", len(snap.Transactions))
	return snap, nil
}

// InvalidateSnapshot drops the cached copy so the next Current call rereads
// the source. Called when the worker lands a fresh snapshot.
func (s *SnapshotService) InvalidateSnapshot() {
	s.cache.Purge()
}
