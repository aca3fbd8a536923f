// Package memory is an in-process implementation of the account store
// capability. Row locks are real mutexes held until commit or rollback, and
// writes are staged per transaction, so concurrent-transfer behavior matches
// a relational store closely enough to exercise the coordinator and
// orchestrator against it. Failure injection fields drive the unhappy paths.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domain_account "github.com/james-ap-sunny/interbank-transfers/internal/domain/account"
	domain_transfer "github.com/james-ap-sunny/interbank-transfers/internal/domain/transfer"
	port_persistence "github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/persistence"
)

type accountRecord struct {
	mu      sync.Mutex
	account domain_account.Account
	balance domain_account.Balance
}

type logRecord struct {
	transferID   string
	fromAccount  string
	toAccount    string
	amount       decimal.Decimal
	currency     string
	status       domain_transfer.Status
	errorMessage string
	createdAt    time.Time
	updatedAt    time.Time
}

type Store struct {
	mu         sync.Mutex
	accounts   map[string]*accountRecord
	byKey      map[int64]*accountRecord
	restraints map[int64][]domain_account.Restraint
	limits     map[string][]domain_account.TransactionLimit
	history    []domain_transfer.HistoryEntry
	logs       map[string]*logRecord
	nextKey    int64

	// Failure injection for tests. A non-nil error makes the corresponding
	// operation fail.
	FailBegin        error
	FailPrepare      error
	FailCommit       error
	FailStatusUpdate error
}

func NewStore() *Store {
	return &Store{
		accounts:   make(map[string]*accountRecord),
		byKey:      make(map[int64]*accountRecord),
		restraints: make(map[int64][]domain_account.Restraint),
		limits:     make(map[string][]domain_account.TransactionLimit),
		logs:       make(map[string]*logRecord),
	}
}

var _ port_persistence.Store = (*Store)(nil)

// SeedAccount registers an account with an opening balance and returns the
// assigned internal key.
func (s *Store) SeedAccount(account domain_account.Account, amount decimal.Decimal) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if account.InternalKey == 0 {
		s.nextKey++
		account.InternalKey = s.nextKey
	} else if account.InternalKey > s.nextKey {
		s.nextKey = account.InternalKey
	}

	rec := &accountRecord{
		account: account,
		balance: domain_account.Balance{
			InternalKey: account.InternalKey,
			ClientNo:    account.ClientNo,
			Amount:      amount,
			LastChange:  account.OpenedAt,
		},
	}
	s.accounts[account.AccountNo] = rec
	s.byKey[account.InternalKey] = rec
	return account.InternalKey
}

func (s *Store) SeedRestraint(r domain_account.Restraint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restraints[r.InternalKey] = append(s.restraints[r.InternalKey], r)
}

func (s *Store) SeedLimit(l domain_account.TransactionLimit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limits[l.AccountNo] = append(s.limits[l.AccountNo], l)
}

func (s *Store) Begin(ctx context.Context) (port_persistence.Tx, error) {
	if s.FailBegin != nil {
		return nil, s.FailBegin
	}
	return &Tx{
		store:          s,
		locked:         make(map[string]*accountRecord),
		stagedBalances: make(map[int64]stagedBalance),
	}, nil
}

func (s *Store) GetAccountAndBalance(ctx context.Context, accountNo string) (*domain_account.Account, *domain_account.Balance, error) {
	s.mu.Lock()
	rec, ok := s.accounts[accountNo]
	s.mu.Unlock()
	if !ok {
		return nil, nil, port_persistence.ErrNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	account := rec.account
	balance := rec.balance
	return &account, &balance, nil
}

func (s *Store) GetActiveRestraints(ctx context.Context, internalKey int64) ([]domain_account.Restraint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return activeRestraints(s.restraints[internalKey]), nil
}

func (s *Store) GetLimits(ctx context.Context, accountNo string) ([]domain_account.TransactionLimit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain_account.TransactionLimit, len(s.limits[accountNo]))
	copy(out, s.limits[accountNo])
	return out, nil
}

func (s *Store) ListHistory(ctx context.Context, accountNo string, limit, offset int) ([]domain_transfer.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []domain_transfer.HistoryEntry
	for i := len(s.history) - 1; i >= 0; i-- {
		if s.history[i].AccountNo == accountNo {
			matched = append(matched, s.history[i])
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *Store) FindTransferLog(ctx context.Context, transferID string) (*domain_transfer.Log, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.logs[transferID]
	if !ok {
		return nil, port_persistence.ErrNotFound
	}
	return rec.toLog(), nil
}

func (s *Store) ListOutgoingTransfers(ctx context.Context, fromAccount string, limit int) ([]*domain_transfer.Log, error) {
	return s.listTransfers(limit, func(r *logRecord) bool { return r.fromAccount == fromAccount })
}

func (s *Store) ListIncomingTransfers(ctx context.Context, toAccount string, limit int) ([]*domain_transfer.Log, error) {
	return s.listTransfers(limit, func(r *logRecord) bool { return r.toAccount == toAccount })
}

func (s *Store) listTransfers(limit int, match func(*logRecord) bool) ([]*domain_transfer.Log, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain_transfer.Log
	for _, rec := range s.logs {
		if match(rec) {
			out = append(out, rec.toLog())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) UpdateTransferLogStatus(ctx context.Context, transferID string, status domain_transfer.Status, errorMessage string) error {
	if s.FailStatusUpdate != nil {
		return s.FailStatusUpdate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.logs[transferID]
	if !ok {
		// The row never committed here (typically after a rollback); nothing
		// to finalize.
		return nil
	}
	rec.status = status
	rec.errorMessage = errorMessage
	rec.updatedAt = time.Now().UTC()
	return nil
}

func (s *Store) Ping(ctx context.Context) error { return nil }

func (s *Store) Close() error { return nil }

func (r *logRecord) toLog() *domain_transfer.Log {
	return domain_transfer.Rehydrate(domain_transfer.RehydrateParams{
		TransferID:   r.transferID,
		FromAccount:  r.fromAccount,
		ToAccount:    r.toAccount,
		Amount:       r.amount,
		Currency:     r.currency,
		Status:       r.status,
		ErrorMessage: r.errorMessage,
		CreatedAt:    r.createdAt,
		UpdatedAt:    r.updatedAt,
	})
}

func activeRestraints(all []domain_account.Restraint) []domain_account.Restraint {
	var out []domain_account.Restraint
	for _, r := range all {
		if r.IsActive() {
			out = append(out, r)
		}
	}
	return out
}
