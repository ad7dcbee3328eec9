package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"waiswallet/internal/source"
)

// Invalidator is anything holding state derived from a snapshot that must
// be dropped when a new one lands.
type Invalidator interface {
	InvalidateSnapshot()
}

// RefreshService pulls a fresh snapshot from the live backend, persists it
// to the local cache, and invalidates derived state. The worker calls it
// on its schedule and whenever a refresh request or change event arrives.
type RefreshService struct {
	fetcher      source.SnapshotReader
	writer       source.SnapshotWriter
	invalidators []Invalidator
}

// NewRefreshService wires the live reader to the persistent writer. The
// writer may be nil when no local cache is configured.
func NewRefreshService(fetcher source.SnapshotReader, writer source.SnapshotWriter, invalidators ...Invalidator) *RefreshService {
	return &RefreshService{
		fetcher:      fetcher,
		writer:       writer,
		invalidators: invalidators,
	}
}

// Refresh fetches, persists, and invalidates. A persist failure is
// reported but does not lose the fetch: invalidation still runs so
// in-memory readers pick up whatever the source now returns.
func (s *RefreshService) Refresh(ctx context.Context) error {
	start := time.Now()

	snap, err := s.fetcher.ReadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("refresh snapshot: %w", err)
	}

	var persistErr error
	if s.writer != nil {
		if persistErr = s.writer.WriteSnapshot(ctx, snap); persistErr != nil {
			slog.ErrorContext(ctx, "Failed to persist refreshed snapshot", "error", persistErr)
		}
	}

	for _, inv := range s.invalidators {
		inv.InvalidateSnapshot()
	}

	slog.InfoContext(ctx, "Snapshot refreshed",
		"transactions", len(snap.Transactions),
		"wallets", len(snap.Wallets),
		"duration", time.Since(start).Round(time.Millisecond))

	if persistErr != nil {
		return fmt.Errorf("persist snapshot: %w", persistErr)
	}
	return nil
}
