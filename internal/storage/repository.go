// Package storage caches the last backend snapshot in a local SQLite
// database, so the app can render through backend outages and restarts.
// The cache is replaced wholesale on every refresh; it never merges.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"waiswallet/internal/core"

	_ "modernc.org/sqlite"
)

// ErrNoSnapshot is returned when the cache has never been written.
var ErrNoSnapshot = errors.New("no cached snapshot")

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// WriteSnapshot implements source.SnapshotWriter. The previous cache
// contents are dropped and re-inserted in one transaction, so readers
// never observe a half-replaced snapshot.
func (r *SQLiteRepository) WriteSnapshot(ctx context.Context, snap core.Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot write: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"snapshot_meta", "wallets", "transactions", "categories", "goals"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshot_meta (id, currency, total_income_cents, reference_date, fetched_at)
		 VALUES (1, ?, ?, ?, ?)`,
		snap.Currency, snap.TotalIncome.Cents, formatDate(snap.ReferenceDate), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert snapshot meta: %w", err)
	}

	for _, w := range snap.Wallets {
		rates, err := json.Marshal(w.RewardRates)
		if err != nil {
			return fmt.Errorf("encode reward rates for wallet %d: %w", w.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO wallets (id, name, provider, kind, balance_cents, limit_cents,
			                      cycle_day, due_day, reward_rates, cashback_cap_cents,
			                      cashback_mtd_cents, cashback_ytd_cents, color, icon)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			w.ID, w.Name, w.Provider, string(w.Kind), w.Balance.Cents, w.Limit.Cents,
			anchorDay(w.CycleAnchor), anchorDay(w.DueAnchor), string(rates), w.CashbackCap.Cents,
			w.CashbackMTD.Cents, w.CashbackYTD.Cents, w.Color, w.Icon)
		if err != nil {
			return fmt.Errorf("insert wallet %d: %w", w.ID, err)
		}
	}

	for _, t := range snap.Transactions {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO transactions (id, wallet_id, merchant, category, amount_cents,
			                           cashback_cents, occurred_on, billed_on, payment, term)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.WalletID, t.Merchant, t.Category, t.Amount.Cents,
			t.Cashback.Cents, formatDate(t.Date), formatDate(t.BillingDate), string(t.Payment), t.Term)
		if err != nil {
			return fmt.Errorf("insert transaction %d: %w", t.ID, err)
		}
	}

	for i, c := range snap.Categories {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO categories (code, label, color, icon, budget_cents, position)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			c.Code, c.Label, c.Color, c.Icon, c.Budget.Cents, i)
		if err != nil {
			return fmt.Errorf("insert category %s: %w", c.Code, err)
		}
	}

	for i, g := range snap.Goals {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO goals (id, name, current_cents, target_cents, color, icon, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			g.ID, g.Name, g.Current.Cents, g.Target.Cents, g.Color, g.Icon, i)
		if err != nil {
			return fmt.Errorf("insert goal %d: %w", g.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot write: %w", err)
	}

	slog.InfoContext(ctx, "Snapshot cached",
		"wallets", len(snap.Wallets),
		"transactions", len(snap.Transactions),
		"categories", len(snap.Categories),
		"goals", len(snap.Goals))
	return nil
}

// ReadSnapshot implements source.SnapshotReader. Returns ErrNoSnapshot
// when nothing has been cached yet.
func (r *SQLiteRepository) ReadSnapshot(ctx context.Context) (core.Snapshot, error) {
	var (
		snap    core.Snapshot
		refDate string
		fetched time.Time
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT currency, total_income_cents, reference_date, fetched_at FROM snapshot_meta WHERE id = 1`).
		Scan(&snap.Currency, &snap.TotalIncome.Cents, &refDate, &fetched)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("read snapshot meta: %w", err)
	}
	snap.ReferenceDate, err = core.ParseDate(refDate)
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("parse cached reference date: %w", err)
	}

	if snap.Wallets, err = r.readWallets(ctx); err != nil {
		return core.Snapshot{}, err
	}
	if snap.Transactions, err = r.readTransactions(ctx); err != nil {
		return core.Snapshot{}, err
	}
	if snap.Categories, err = r.readCategories(ctx); err != nil {
		return core.Snapshot{}, err
	}
	if snap.Goals, err = r.readGoals(ctx); err != nil {
		return core.Snapshot{}, err
	}

	slog.DebugContext(ctx, "Snapshot loaded from cache", "fetched_at", fetched)
	return snap, nil
}

// FetchedAt reports when the cached snapshot was written, for staleness
// checks and the readiness probe.
func (r *SQLiteRepository) FetchedAt(ctx context.Context) (time.Time, error) {
	var fetched time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT fetched_at FROM snapshot_meta WHERE id = 1`).Scan(&fetched)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read snapshot age: %w", err)
	}
	return fetched, nil
}

func (r *SQLiteRepository) readWallets(ctx context.Context) ([]core.Wallet, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, provider, kind, balance_cents, limit_cents, cycle_day, due_day,
		        reward_rates, cashback_cap_cents, cashback_mtd_cents, cashback_ytd_cents,
		        color, icon
		 FROM wallets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query wallets: %w", err)
	}
	defer rows.Close()

	var out []core.Wallet
	for rows.Next() {
		var (
			w        core.Wallet
			kind     string
			cycleDay sql.NullInt64
			dueDay   sql.NullInt64
			rates    string
		)
		if err := rows.Scan(&w.ID, &w.Name, &w.Provider, &kind, &w.Balance.Cents, &w.Limit.Cents,
			&cycleDay, &dueDay, &rates, &w.CashbackCap.Cents, &w.CashbackMTD.Cents,
			&w.CashbackYTD.Cents, &w.Color, &w.Icon); err != nil {
			return nil, fmt.Errorf("scan wallet: %w", err)
		}
		w.Kind = core.WalletKind(kind)
		if err := json.Unmarshal([]byte(rates), &w.RewardRates); err != nil {
			return nil, fmt.Errorf("decode reward rates for wallet %d: %w", w.ID, err)
		}
		if w.CycleAnchor, err = nullableAnchor(cycleDay); err != nil {
			return nil, fmt.Errorf("wallet %d cycle day: %w", w.ID, err)
		}
		if w.DueAnchor, err = nullableAnchor(dueDay); err != nil {
			return nil, fmt.Errorf("wallet %d due day: %w", w.ID, err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) readTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, wallet_id, merchant, category, amount_cents, cashback_cents,
		        occurred_on, billed_on, payment, term
		 FROM transactions ORDER BY billed_on, id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			t        core.Transaction
			payment  string
			occurred string
			billed   string
		)
		if err := rows.Scan(&t.ID, &t.WalletID, &t.Merchant, &t.Category, &t.Amount.Cents,
			&t.Cashback.Cents, &occurred, &billed, &payment, &t.Term); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Payment = core.PaymentKind(payment)
		if t.Date, err = core.ParseDate(occurred); err != nil {
			return nil, fmt.Errorf("transaction %d occurred_on: %w", t.ID, err)
		}
		if t.BillingDate, err = core.ParseDate(billed); err != nil {
			return nil, fmt.Errorf("transaction %d billed_on: %w", t.ID, err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) readCategories(ctx context.Context) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT code, label, color, icon, budget_cents FROM categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []core.Category
	for rows.Next() {
		var c core.Category
		if err := rows.Scan(&c.Code, &c.Label, &c.Color, &c.Icon, &c.Budget.Cents); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) readGoals(ctx context.Context) ([]core.Goal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, current_cents, target_cents, color, icon FROM goals ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	defer rows.Close()

	var out []core.Goal
	for rows.Next() {
		var g core.Goal
		if err := rows.Scan(&g.ID, &g.Name, &g.Current.Cents, &g.Target.Cents, &g.Color, &g.Icon); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func formatDate(d core.Date) string {
	return d.Format("2006-01-02")
}

func anchorDay(a *core.MonthlyAnchor) any {
	if a == nil {
		return nil
	}
	return a.Day()
}

func nullableAnchor(v sql.NullInt64) (*core.MonthlyAnchor, error) {
	if !v.Valid {
		return nil, nil
	}
	a, err := core.NewMonthlyAnchor(int(v.Int64))
	if err != nil {
		return nil, err
	}
	return &a, nil
}
