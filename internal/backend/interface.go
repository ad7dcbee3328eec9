// Package backend selects and assembles the snapshot source the app
// reads from, based on configuration.
package backend

import (
	"waiswallet/internal/source"
)

// CleanupFunc releases whatever resources a source holds.
type CleanupFunc func() error

// Result contains the assembled snapshot source and an optional cleanup.
type Result struct {
	Reader  source.SnapshotReader
	Cleanup CleanupFunc
}

// SourceType names a snapshot source strategy.
type SourceType string

const (
	// LiveSource reads straight from the backend REST API on every cache
	// miss.
	LiveSource SourceType = "live"
	// CachedSource reads from the local SQLite cache the worker keeps
	// fresh.
	CachedSource SourceType = "cached"
	// DemoSource serves the built-in dataset, no backend required.
	DemoSource SourceType = "demo"
)

// String implements fmt.Stringer.
func (st SourceType) String() string {
	return string(st)
}

// IsValid returns true if the source type is recognized.
func (st SourceType) IsValid() bool {
	switch st {
	case LiveSource, CachedSource, DemoSource:
		return true
	default:
		return false
	}
}
