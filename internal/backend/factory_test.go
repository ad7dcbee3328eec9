package backend

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"waiswallet/internal/config"
)

func testConfig(t *testing.T, snapshotSource string) *config.Config {
	t.Helper()
	return &config.Config{
		Port:            "8082",
		BackendBaseURL:  "http://localhost:8000/api",
		BackendTimeout:  5 * time.Second,
		SnapshotSource:  snapshotSource,
		SQLiteDBPath:    filepath.Join(t.TempDir(), "cache.db"),
		RefreshInterval: time.Minute,
		Currency:        "PHP",
	}
}

func TestSourceTypeIsValid(t *testing.T) {
	for _, st := range []SourceType{LiveSource, CachedSource, DemoSource} {
		if !st.IsValid() {
			t.Errorf("%s should be valid", st)
		}
	}
	if SourceType("sheets").IsValid() {
		t.Error("unknown source type should be invalid")
	}
}

func TestCreateSource(t *testing.T) {
	factory := NewFactory(nil)

	t.Run("invalid", func(t *testing.T) {
		if _, err := factory.CreateSource(testConfig(t, "nope")); err == nil {
			t.Fatal("expected error for invalid source")
		}
	})

	t.Run("demo", func(t *testing.T) {
		res, err := factory.CreateSource(testConfig(t, "demo"))
		if err != nil {
			t.Fatalf("CreateSource failed: %v", err)
		}
		snap, err := res.Reader.ReadSnapshot(context.Background())
		if err != nil {
			t.Fatalf("demo source read failed: %v", err)
		}
		if len(snap.Wallets) == 0 {
			t.Error("demo snapshot should carry wallets")
		}
	})

	t.Run("live", func(t *testing.T) {
		res, err := factory.CreateSource(testConfig(t, "live"))
		if err != nil {
			t.Fatalf("CreateSource failed: %v", err)
		}
		if res.Reader == nil {
			t.Fatal("expected a reader")
		}
	})

	t.Run("cached", func(t *testing.T) {
		res, err := factory.CreateSource(testConfig(t, "cached"))
		if err != nil {
			t.Fatalf("CreateSource failed: %v", err)
		}
		if res.Cleanup == nil {
			t.Fatal("cached source should provide cleanup")
		}
		if err := res.Cleanup(); err != nil {
			t.Errorf("cleanup failed: %v", err)
		}
	})
}
