package port_persistence

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	domain_account "github.com/james-ap-sunny/interbank-transfers/internal/domain/account"
	domain_transfer "github.com/james-ap-sunny/interbank-transfers/internal/domain/transfer"
)

var ErrNotFound = errors.New("persistence: not found")

// Store is the capability one account database exposes. Transactional work
// goes through a Tx obtained from Begin; the remaining methods are
// single-shot reads and the best-effort ledger status update, which runs
// outside any coordinated transaction on purpose.
type Store interface {
	Begin(ctx context.Context) (Tx, error)

	GetAccountAndBalance(ctx context.Context, accountNo string) (*domain_account.Account, *domain_account.Balance, error)
	GetActiveRestraints(ctx context.Context, internalKey int64) ([]domain_account.Restraint, error)
	GetLimits(ctx context.Context, accountNo string) ([]domain_account.TransactionLimit, error)
	ListHistory(ctx context.Context, accountNo string, limit, offset int) ([]domain_transfer.HistoryEntry, error)

	FindTransferLog(ctx context.Context, transferID string) (*domain_transfer.Log, error)
	ListOutgoingTransfers(ctx context.Context, fromAccount string, limit int) ([]*domain_transfer.Log, error)
	ListIncomingTransfers(ctx context.Context, toAccount string, limit int) ([]*domain_transfer.Log, error)

	// UpdateTransferLogStatus finalizes this store's ledger row after the
	// transfer outcome is already decided. It is best-effort: a missing row is
	// not an error, and callers must not let a failure here reverse or fail an
	// already-committed transfer.
	UpdateTransferLogStatus(ctx context.Context, transferID string, status domain_transfer.Status, errorMessage string) error

	Ping(ctx context.Context) error
	Close() error
}

// Tx is one open local transaction against a single store. The adapter never
// commits or rolls back on its own; the coordinator drives Prepare, Commit
// and Rollback, and every other method runs inside this transaction.
type Tx interface {
	FindAccountAndBalance(ctx context.Context, accountNo string) (*domain_account.Account, *domain_account.Balance, error)

	// LockAccountAndBalance acquires an exclusive row lock on the account and
	// its balance, held until this transaction commits or rolls back. This is
	// what serializes concurrent transfers touching the same account.
	LockAccountAndBalance(ctx context.Context, accountNo string) (*domain_account.Account, *domain_account.Balance, error)

	UpdateBalance(ctx context.Context, internalKey int64, amount decimal.Decimal, changedAt time.Time) error
	AppendHistory(ctx context.Context, entry domain_transfer.HistoryEntry) error
	FindActiveRestraints(ctx context.Context, internalKey int64) ([]domain_account.Restraint, error)
	FindLimits(ctx context.Context, accountNo string) ([]domain_account.TransactionLimit, error)
	CreateTransferLog(ctx context.Context, log *domain_transfer.Log) error

	// Prepare makes pending writes visible inside the transaction without
	// finalizing them, and verifies the transaction is still usable.
	Prepare(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
