package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domain_account "github.com/james-ap-sunny/interbank-transfers/internal/domain/account"
	domain_transfer "github.com/james-ap-sunny/interbank-transfers/internal/domain/transfer"
	"github.com/james-ap-sunny/interbank-transfers/internal/impl/gateway/memory"
	port_persistence "github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/persistence"
)

const accountNo = "6214850212345678"

func seeded(t *testing.T) *memory.Store {
	t.Helper()

	store := memory.NewStore()
	store.SeedAccount(domain_account.Account{
		ClientNo:  "C0001",
		AccountNo: accountNo,
		Currency:  "CNY",
		Status:    "A",
	}, decimal.RequireFromString("500.00"))
	return store
}

func TestRowLockBlocksSecondTransaction(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()

	tx1, err := store.Begin(ctx)
	if err != nil {
		t.Fatalf("begin tx1: %v", err)
	}

	if _, _, err := tx1.LockAccountAndBalance(ctx, accountNo); err != nil {
		t.Fatalf("lock in tx1: %v", err)
	}

	tx2, err := store.Begin(ctx)
	if err != nil {
		t.Fatalf("begin tx2: %v", err)
	}

	acquired := make(chan struct{})
	go func() {
		_, _, _ = tx2.LockAccountAndBalance(ctx, accountNo)
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("expected tx2 to block while tx1 holds the row lock")
	case <-time.After(50 * time.Millisecond):
	}

	if err := tx1.Rollback(ctx); err != nil {
		t.Fatalf("rollback tx1: %v", err)
	}

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("expected tx2 to acquire the lock after tx1 released it")
	}

	_ = tx2.Rollback(ctx)
}

func TestStagedWritesInvisibleUntilCommit(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()

	tx, err := store.Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	_, balance, err := tx.LockAccountAndBalance(ctx, accountNo)
	if err != nil {
		t.Fatalf("lock: %v", err)
	}

	now := time.Now().UTC()
	if err := tx.UpdateBalance(ctx, balance.InternalKey, decimal.RequireFromString("300.00"), now); err != nil {
		t.Fatalf("update balance: %v", err)
	}

	// The transaction sees its own staged write.
	_, inTx, err := tx.FindAccountAndBalance(ctx, accountNo)
	if err != nil {
		t.Fatalf("find in tx: %v", err)
	}
	if !inTx.Amount.Equal(decimal.RequireFromString("300.00")) {
		t.Errorf("expected staged balance 300.00 inside the transaction, got %s", inTx.Amount)
	}

	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("commit: %v", err)
	}

	_, committed, err := store.GetAccountAndBalance(ctx, accountNo)
	if err != nil {
		t.Fatalf("read committed: %v", err)
	}
	if !committed.Amount.Equal(decimal.RequireFromString("300.00")) {
		t.Errorf("expected committed balance 300.00, got %s", committed.Amount)
	}
}

func TestRollbackDiscardsStagedWrites(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()

	tx, err := store.Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	_, balance, err := tx.LockAccountAndBalance(ctx, accountNo)
	if err != nil {
		t.Fatalf("lock: %v", err)
	}

	now := time.Now().UTC()
	if err := tx.UpdateBalance(ctx, balance.InternalKey, decimal.Zero, now); err != nil {
		t.Fatalf("update balance: %v", err)
	}

	log, err := domain_transfer.New(domain_transfer.NewParams{
		TransferID:  "TRF20260101120000ABCDEF01",
		FromAccount: accountNo,
		ToAccount:   "6228480698765432",
		Amount:      decimal.RequireFromString("500.00"),
		Currency:    "CNY",
		Now:         now,
	})
	if err != nil {
		t.Fatalf("new log: %v", err)
	}
	if err := tx.CreateTransferLog(ctx, log); err != nil {
		t.Fatalf("create log: %v", err)
	}

	if err := tx.Rollback(ctx); err != nil {
		t.Fatalf("rollback: %v", err)
	}

	_, committed, err := store.GetAccountAndBalance(ctx, accountNo)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !committed.Amount.Equal(decimal.RequireFromString("500.00")) {
		t.Errorf("expected balance unchanged at 500.00, got %s", committed.Amount)
	}

	if _, err := store.FindTransferLog(ctx, "TRF20260101120000ABCDEF01"); err == nil {
		t.Error("expected rolled back ledger row to be absent")
	}
}

func TestUpdateTransferLogStatusMissingRow(t *testing.T) {
	store := seeded(t)

	err := store.UpdateTransferLogStatus(context.Background(), "TRF00000000000000FFFFFFFF",
		domain_transfer.StatusRollback, "validation failed")
	if err != nil {
		t.Errorf("expected missing row to be a no-op, got %v", err)
	}
}

func TestClosedTransactionRejectsWork(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()

	tx, err := store.Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := tx.Rollback(ctx); err != nil {
		t.Fatalf("rollback: %v", err)
	}

	if _, _, err := tx.LockAccountAndBalance(ctx, accountNo); err == nil {
		t.Error("expected lock on a closed transaction to fail")
	}
	if err := tx.Commit(ctx); err == nil {
		t.Error("expected commit on a closed transaction to fail")
	}
}

func TestUnknownAccount(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()

	if _, _, err := store.GetAccountAndBalance(ctx, "9999999999999999"); err != port_persistence.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
