package port_accounts

import (
	"context"

	domain_account "github.com/james-ap-sunny/interbank-transfers/internal/domain/account"
	domain_transfer "github.com/james-ap-sunny/interbank-transfers/internal/domain/transfer"
)

// AccountInfo is the read-side view of one account: the account row, its
// balance, and the restraints and limits that would gate a transfer.
type AccountInfo struct {
	Account    *domain_account.Account
	Balance    *domain_account.Balance
	Restraints []domain_account.Restraint
	Limits     []domain_account.TransactionLimit
}

type AccountReader interface {
	// Info looks the account up in the source store first, then the
	// destination store.
	Info(ctx context.Context, accountNo string) (*AccountInfo, error)

	History(ctx context.Context, accountNo string, limit, offset int) ([]domain_transfer.HistoryEntry, error)
}
