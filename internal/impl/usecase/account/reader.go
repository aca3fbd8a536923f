// Package impl_accounts is the read side for accounts: lookups that span
// both stores without opening a coordinated transaction.
package impl_accounts

import (
	"context"
	"errors"

	domain_transfer "github.com/james-ap-sunny/interbank-transfers/internal/domain/transfer"
	port_persistence "github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/persistence"
	port_accounts "github.com/james-ap-sunny/interbank-transfers/internal/ports/usecase/account"
)

type AccountReaderImpl struct {
	source port_persistence.Store
	dest   port_persistence.Store
}

func NewAccountReaderImpl(source, dest port_persistence.Store) *AccountReaderImpl {
	return &AccountReaderImpl{source: source, dest: dest}
}

var _ port_accounts.AccountReader = (*AccountReaderImpl)(nil)

func (r *AccountReaderImpl) Info(ctx context.Context, accountNo string) (*port_accounts.AccountInfo, error) {
	info, err := r.infoFrom(ctx, r.source, accountNo)
	if err == nil {
		return info, nil
	}
	if !errors.Is(err, port_persistence.ErrNotFound) {
		return nil, err
	}
	return r.infoFrom(ctx, r.dest, accountNo)
}

func (r *AccountReaderImpl) infoFrom(ctx context.Context, store port_persistence.Store, accountNo string) (*port_accounts.AccountInfo, error) {
	account, balance, err := store.GetAccountAndBalance(ctx, accountNo)
	if err != nil {
		return nil, err
	}

	restraints, err := store.GetActiveRestraints(ctx, account.InternalKey)
	if err != nil {
		return nil, err
	}

	limits, err := store.GetLimits(ctx, accountNo)
	if err != nil {
		return nil, err
	}

	return &port_accounts.AccountInfo{
		Account:    account,
		Balance:    balance,
		Restraints: restraints,
		Limits:     limits,
	}, nil
}

func (r *AccountReaderImpl) History(ctx context.Context, accountNo string, limit, offset int) ([]domain_transfer.HistoryEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := r.source.ListHistory(ctx, accountNo, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		return entries, nil
	}
	return r.dest.ListHistory(ctx, accountNo, limit, offset)
}
