package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"waiswallet/internal/amqp"
	"waiswallet/internal/services"
)

// RefreshWorker keeps the local snapshot cache in sync with the backend.
// It refreshes on three triggers: once at startup, on every change event
// consumed from AMQP, and on a fixed interval as a catch-all for missed
// messages.
type RefreshWorker struct {
	refresher *services.RefreshService
	client    *amqp.Client
	interval  time.Duration
}

func NewRefreshWorker(refresher *services.RefreshService, client *amqp.Client, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{
		refresher: refresher,
		client:    client,
		interval:  interval,
	}
}

// HandleMessage processes a single message from AMQP. Change events and
// refresh requests both mean the same thing here: the cached snapshot is
// stale and must be rebuilt from the backend.
func (w *RefreshWorker) HandleMessage(ctx context.Context, body []byte) error {
	if event, err := amqp.ChangeEventFromJSON(body); err == nil && event.Entity != "" {
		slog.InfoContext(ctx, "Processing change event",
			"entity", event.Entity,
			"id", event.ID,
			"action", event.Action)
	} else if req, err := amqp.RefreshRequestFromJSON(body); err == nil && req.Reason != "" {
		slog.InfoContext(ctx, "Processing refresh request", "reason", req.Reason)
	} else {
		slog.WarnContext(ctx, "Unrecognized message, refreshing anyway", "body_size", len(body))
	}

	if err := w.refresher.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh snapshot: %w", err)
	}
	return nil
}

// Run blocks until ctx is cancelled, driving the three refresh triggers.
func (w *RefreshWorker) Run(ctx context.Context) error {
	// Startup refresh so a fresh deployment serves current data without
	// waiting for the first event or tick.
	slog.InfoContext(ctx, "Performing startup refresh")
	if err := w.refresher.Refresh(ctx); err != nil {
		slog.ErrorContext(ctx, "Startup refresh failed", "error", err)
		// Don't exit - the periodic tick will retry.
	}

	errCh := make(chan error, 1)
	if w.client != nil {
		go func() {
			err := w.client.ConsumeMessages(ctx, func(body []byte) error {
				return w.HandleMessage(ctx, body)
			})
			if err != nil && err != context.Canceled {
				errCh <- err
			}
		}()
	} else {
		slog.InfoContext(ctx, "No AMQP client configured, relying on periodic refresh only")
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errCh:
			return fmt.Errorf("message consumption failed: %w", err)
		case <-ticker.C:
			if err := w.refresher.Refresh(ctx); err != nil {
				slog.ErrorContext(ctx, "Periodic refresh failed", "error", err)
			}
		}
	}
}
