// Package source defines the ports through which the view layer obtains
// backend snapshots. The backend owns all domain data; a source only
// reads it.
package source

import (
	"context"

	"waiswallet/internal/core"
)

// Ports for inbound snapshot adapters.
type (
	// SnapshotReader fetches a complete, consistent snapshot of the
	// backend state. Implementations: the live REST client, the local
	// SQLite cache, and the in-memory demo fixtures.
	//
	// Returned snapshots carry installment purchases pre-expanded to one
	// line per posting period. Expansion is not idempotent, so it happens
	// exactly once, inside the adapter that first produces the snapshot.
	SnapshotReader interface {
		ReadSnapshot(ctx context.Context) (core.Snapshot, error)
	}

	// SnapshotWriter persists a snapshot wholesale, replacing whatever
	// was stored before. Only the local cache implements this.
	SnapshotWriter interface {
		WriteSnapshot(ctx context.Context, snap core.Snapshot) error
	}
)
