package memory

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	domain_account "github.com/james-ap-sunny/interbank-transfers/internal/domain/account"
	domain_transfer "github.com/james-ap-sunny/interbank-transfers/internal/domain/transfer"
	port_persistence "github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/persistence"
)

var errTxClosed = errors.New("memory: transaction already closed")

type stagedBalance struct {
	amount    decimal.Decimal
	changedAt time.Time
}

// Tx stages writes until Commit and holds row locks acquired through
// LockAccountAndBalance until the transaction finishes, blocking other
// transactions that touch the same account.
type Tx struct {
	store *Store

	locked         map[string]*accountRecord
	lockOrder      []*accountRecord
	stagedBalances map[int64]stagedBalance
	stagedHistory  []domain_transfer.HistoryEntry
	stagedLogs     []logRecord

	done bool
}

var _ port_persistence.Tx = (*Tx)(nil)

func (t *Tx) FindAccountAndBalance(ctx context.Context, accountNo string) (*domain_account.Account, *domain_account.Balance, error) {
	rec, err := t.record(accountNo)
	if err != nil {
		return nil, nil, err
	}

	if _, held := t.locked[accountNo]; held {
		return t.snapshot(rec)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	account := rec.account
	balance := rec.balance
	return &account, &balance, nil
}

func (t *Tx) LockAccountAndBalance(ctx context.Context, accountNo string) (*domain_account.Account, *domain_account.Balance, error) {
	if t.done {
		return nil, nil, errTxClosed
	}

	rec, err := t.record(accountNo)
	if err != nil {
		return nil, nil, err
	}

	// Re-locking a row this transaction already holds is a no-op, matching
	// SELECT ... FOR UPDATE semantics.
	if _, held := t.locked[accountNo]; !held {
		rec.mu.Lock()
		t.locked[accountNo] = rec
		t.lockOrder = append(t.lockOrder, rec)
	}

	return t.snapshot(rec)
}

// snapshot returns the row as this transaction sees it, including its own
// staged balance write. Caller must hold the row lock via t.locked.
func (t *Tx) snapshot(rec *accountRecord) (*domain_account.Account, *domain_account.Balance, error) {
	account := rec.account
	balance := rec.balance
	if staged, ok := t.stagedBalances[balance.InternalKey]; ok {
		balance.Amount = staged.amount
		balance.LastChange = staged.changedAt
	}
	return &account, &balance, nil
}

func (t *Tx) UpdateBalance(ctx context.Context, internalKey int64, amount decimal.Decimal, changedAt time.Time) error {
	if t.done {
		return errTxClosed
	}
	t.stagedBalances[internalKey] = stagedBalance{amount: amount, changedAt: changedAt}
	return nil
}

func (t *Tx) AppendHistory(ctx context.Context, entry domain_transfer.HistoryEntry) error {
	if t.done {
		return errTxClosed
	}
	t.stagedHistory = append(t.stagedHistory, entry)
	return nil
}

func (t *Tx) FindActiveRestraints(ctx context.Context, internalKey int64) ([]domain_account.Restraint, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return activeRestraints(t.store.restraints[internalKey]), nil
}

func (t *Tx) FindLimits(ctx context.Context, accountNo string) ([]domain_account.TransactionLimit, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	out := make([]domain_account.TransactionLimit, len(t.store.limits[accountNo]))
	copy(out, t.store.limits[accountNo])
	return out, nil
}

func (t *Tx) CreateTransferLog(ctx context.Context, log *domain_transfer.Log) error {
	if t.done {
		return errTxClosed
	}
	t.stagedLogs = append(t.stagedLogs, logRecord{
		transferID:   log.TransferID(),
		fromAccount:  log.FromAccount(),
		toAccount:    log.ToAccount(),
		amount:       log.Amount(),
		currency:     log.Currency(),
		status:       log.Status(),
		errorMessage: log.ErrorMessage(),
		createdAt:    log.CreatedAt(),
		updatedAt:    log.UpdatedAt(),
	})
	return nil
}

func (t *Tx) Prepare(ctx context.Context) error {
	if t.done {
		return errTxClosed
	}
	if t.store.FailPrepare != nil {
		return t.store.FailPrepare
	}
	return nil
}

func (t *Tx) Commit(ctx context.Context) error {
	if t.done {
		return errTxClosed
	}

	if t.store.FailCommit != nil {
		t.release()
		return t.store.FailCommit
	}

	t.store.mu.Lock()
	for key, staged := range t.stagedBalances {
		if rec, ok := t.store.byKey[key]; ok {
			rec.balance.Amount = staged.amount
			rec.balance.LastChange = staged.changedAt
		}
	}
	t.store.history = append(t.store.history, t.stagedHistory...)
	for i := range t.stagedLogs {
		row := t.stagedLogs[i]
		t.store.logs[row.transferID] = &row
	}
	t.store.mu.Unlock()

	t.release()
	return nil
}

func (t *Tx) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.release()
	return nil
}

func (t *Tx) release() {
	for _, rec := range t.lockOrder {
		rec.mu.Unlock()
	}
	t.lockOrder = nil
	t.locked = make(map[string]*accountRecord)
	t.stagedBalances = make(map[int64]stagedBalance)
	t.stagedHistory = nil
	t.stagedLogs = nil
	t.done = true
}

func (t *Tx) record(accountNo string) (*accountRecord, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	rec, ok := t.store.accounts[accountNo]
	if !ok {
		return nil, port_persistence.ErrNotFound
	}
	return rec, nil
}
