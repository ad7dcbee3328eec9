// Package api implements the live snapshot source: a thin JSON client
// for the WaisWallet backend REST API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"waiswallet/internal/core"
)

// Client fetches backend collections and assembles them into a snapshot.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a backend API client. The timeout bounds each
// individual collection fetch.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// ReadSnapshot implements source.SnapshotReader. The five collections are
// fetched concurrently; any single failure fails the whole read, because a
// snapshot assembled from mixed backend generations would let derived
// numbers disagree with each other.
func (c *Client) ReadSnapshot(ctx context.Context) (core.Snapshot, error) {
	var (
		wallets    []walletDTO
		txs        []transactionDTO
		categories []categoryDTO
		goals      []goalDTO
		overview   overviewDTO
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.getJSON(gctx, "/wallets", &wallets) })
	g.Go(func() error { return c.getJSON(gctx, "/transactions", &txs) })
	g.Go(func() error { return c.getJSON(gctx, "/categories", &categories) })
	g.Go(func() error { return c.getJSON(gctx, "/goals", &goals) })
	g.Go(func() error { return c.getJSON(gctx, "/overview", &overview) })
	if err := g.Wait(); err != nil {
		return core.Snapshot{}, fmt.Errorf("fetch backend snapshot: %w", err)
	}

	snap, err := assemble(wallets, txs, categories, goals, overview)
	if err != nil {
		return core.Snapshot{}, err
	}

	slog.DebugContext(ctx, "Backend snapshot fetched",
		"wallets", len(snap.Wallets),
		"transactions", len(snap.Transactions),
		"categories", len(snap.Categories))
	return snap, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
