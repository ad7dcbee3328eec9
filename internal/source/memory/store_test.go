package memory

import (
	"context"
	"testing"

	"waiswallet/internal/core"
)

func TestStoreReadWrite(t *testing.T) {
	store := NewStore(core.Snapshot{Currency: "PHP"})

	snap, err := store.ReadSnapshot(context.Background())
	if err != nil {
		t.Fatalf("ReadSnapshot failed: %v", err)
	}
	if snap.Currency != "PHP" {
		t.Errorf("expected PHP, got %q", snap.Currency)
	}

	if err := store.WriteSnapshot(context.Background(), core.Snapshot{Currency: "USD"}); err != nil {
		t.Fatalf("WriteSnapshot failed: %v", err)
	}
	snap, err = store.ReadSnapshot(context.Background())
	if err != nil {
		t.Fatalf("ReadSnapshot failed: %v", err)
	}
	if snap.Currency != "USD" {
		t.Errorf("expected USD after write, got %q", snap.Currency)
	}
}

func TestStoreCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewDemo()
	if _, err := store.ReadSnapshot(ctx); err == nil {
		t.Error("expected error for cancelled context")
	}
	if err := store.WriteSnapshot(ctx, core.Snapshot{}); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestDemoSnapshotConsistency(t *testing.T) {
	snap := DemoSnapshot()

	if snap.Currency != "PHP" {
		t.Errorf("expected PHP demo currency, got %q", snap.Currency)
	}
	if snap.ReferenceDate.IsEmpty() {
		t.Fatal("demo snapshot must pin a reference date")
	}

	for _, tx := range snap.Transactions {
		if _, ok := snap.WalletByID(tx.WalletID); !ok {
			t.Errorf("transaction %d references unknown wallet %d", tx.ID, tx.WalletID)
		}
		if _, ok := snap.CategoryByCode(tx.Category); !ok {
			t.Errorf("transaction %d references unknown category %q", tx.ID, tx.Category)
		}
		if tx.BillingDate.IsEmpty() {
			t.Errorf("transaction %d has no billing date", tx.ID)
		}
	}

	// Installment purchases must arrive pre-expanded: one line per period.
	for _, tx := range snap.Transactions {
		if tx.Payment == core.Installment && tx.Term >= 2 {
			count := 0
			for _, other := range snap.Transactions {
				if other.ID == tx.ID {
					count++
				}
			}
			if count != tx.Term {
				t.Errorf("installment %d: expected %d lines, got %d", tx.ID, tx.Term, count)
			}
		}
	}
}
