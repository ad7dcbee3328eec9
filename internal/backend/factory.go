package backend

import (
	"fmt"
	"log/slog"

	"waiswallet/internal/config"
	"waiswallet/internal/source/api"
	"waiswallet/internal/source/memory"
	"waiswallet/internal/storage"
)

// Factory creates snapshot sources from configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// CreateSource assembles the snapshot source the config names.
func (f *Factory) CreateSource(cfg *config.Config) (*Result, error) {
	st := SourceType(cfg.SnapshotSource)
	if !st.IsValid() {
		return nil, fmt.Errorf("invalid snapshot source: %s", cfg.SnapshotSource)
	}

	switch st {
	case LiveSource:
		client := api.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout)
		f.logger.Info("Initialized live snapshot source",
			"base_url", cfg.BackendBaseURL,
			"timeout", cfg.BackendTimeout)
		return &Result{Reader: client}, nil

	case CachedSource:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize snapshot cache: %w", err)
		}
		f.logger.Info("Initialized cached snapshot source", "db_path", cfg.SQLiteDBPath)
		return &Result{Reader: repo, Cleanup: repo.Close}, nil

	default:
		store := memory.NewDemo()
		f.logger.Info("Initialized demo snapshot source")
		return &Result{Reader: store}, nil
	}
}
