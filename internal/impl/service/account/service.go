// Package impl_account validates and mutates accounts inside one local
// transaction supplied by the coordinator. The service never commits or rolls
// back; it only reads, locks and stages writes through the Tx it was given.
package impl_account

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domain_account "github.com/james-ap-sunny/interbank-transfers/internal/domain/account"
	port_persistence "github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/persistence"
)

// Role names which side of a transfer an account plays. It only affects log
// fields; validation rules are the same for both sides.
type Role string

const (
	RoleSource      Role = "source"
	RoleDestination Role = "destination"
)

type Service struct {
	tx  port_persistence.Tx
	log *zap.Logger
}

func New(tx port_persistence.Tx, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{tx: tx, log: log}
}

// ValidateForTransfer locks the account row and checks that it exists, is
// active, and carries no active transfer-blocking restraint. The lock is held
// until the enclosing transaction finishes.
func (s *Service) ValidateForTransfer(ctx context.Context, accountNo string, role Role) (*domain_account.Account, *domain_account.Balance, error) {
	account, balance, err := s.tx.LockAccountAndBalance(ctx, accountNo)
	if err != nil {
		if errors.Is(err, port_persistence.ErrNotFound) {
			return nil, nil, &domain_account.NotFoundError{AccountNo: accountNo}
		}
		return nil, nil, err
	}

	if !account.IsActive() {
		return nil, nil, &domain_account.InactiveError{AccountNo: accountNo, Status: account.Status}
	}

	restraints, err := s.tx.FindActiveRestraints(ctx, account.InternalKey)
	if err != nil {
		return nil, nil, err
	}

	var blocking []string
	for _, r := range restraints {
		if r.BlocksTransfers() {
			blocking = append(blocking, r.Type)
		}
	}
	if len(blocking) > 0 {
		return nil, nil, &domain_account.RestrictedError{AccountNo: accountNo, RestraintTypes: blocking}
	}

	s.log.Debug("account validated for transfer",
		zap.String("account_no", accountNo),
		zap.String("role", string(role)))

	return account, balance, nil
}

// CheckTransferLimits validates the amount against every limit row found for
// the account. No rows means no limit enforced here.
func (s *Service) CheckTransferLimits(ctx context.Context, accountNo string, amount decimal.Decimal) error {
	limits, err := s.tx.FindLimits(ctx, accountNo)
	if err != nil {
		return err
	}

	for _, l := range limits {
		if err := l.Check(amount); err != nil {
			return err
		}
	}
	return nil
}

// EnsureSufficientBalance is the advisory balance check. The authoritative
// check happens again in Debit under the row lock.
func (s *Service) EnsureSufficientBalance(ctx context.Context, accountNo string, amount decimal.Decimal) error {
	_, balance, err := s.tx.FindAccountAndBalance(ctx, accountNo)
	if err != nil {
		if errors.Is(err, port_persistence.ErrNotFound) {
			return &domain_account.NotFoundError{AccountNo: accountNo}
		}
		return err
	}

	if !balance.HasSufficient(amount) {
		return &domain_account.InsufficientBalanceError{
			AccountNo: accountNo,
			Available: balance.Amount,
			Requested: amount,
		}
	}
	return nil
}

// MutationResult reports one balance change, with the amounts needed to write
// the matching history row.
type MutationResult struct {
	Account         *domain_account.Account
	Amount          decimal.Decimal
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
}

// Debit subtracts amount from the account under a fresh row lock, re-checking
// the balance since any earlier read was advisory.
func (s *Service) Debit(ctx context.Context, accountNo string, amount decimal.Decimal, now time.Time) (*MutationResult, error) {
	account, balance, err := s.lock(ctx, accountNo)
	if err != nil {
		return nil, err
	}

	previous := balance.Amount
	newBalance, err := balance.Debit(accountNo, amount, now)
	if err != nil {
		return nil, err
	}

	if err := s.tx.UpdateBalance(ctx, balance.InternalKey, newBalance, now); err != nil {
		return nil, err
	}

	s.log.Info("account debited",
		zap.String("account_no", accountNo),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("previous_balance", previous.StringFixed(2)),
		zap.String("new_balance", newBalance.StringFixed(2)))

	return &MutationResult{Account: account, Amount: amount, PreviousBalance: previous, NewBalance: newBalance}, nil
}

// Credit adds amount to the account under a fresh row lock.
func (s *Service) Credit(ctx context.Context, accountNo string, amount decimal.Decimal, now time.Time) (*MutationResult, error) {
	account, balance, err := s.lock(ctx, accountNo)
	if err != nil {
		return nil, err
	}

	previous := balance.Amount
	newBalance := balance.Credit(amount, now)

	if err := s.tx.UpdateBalance(ctx, balance.InternalKey, newBalance, now); err != nil {
		return nil, err
	}

	s.log.Info("account credited",
		zap.String("account_no", accountNo),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("previous_balance", previous.StringFixed(2)),
		zap.String("new_balance", newBalance.StringFixed(2)))

	return &MutationResult{Account: account, Amount: amount, PreviousBalance: previous, NewBalance: newBalance}, nil
}

func (s *Service) lock(ctx context.Context, accountNo string) (*domain_account.Account, *domain_account.Balance, error) {
	account, balance, err := s.tx.LockAccountAndBalance(ctx, accountNo)
	if err != nil {
		if errors.Is(err, port_persistence.ErrNotFound) {
			return nil, nil, &domain_account.NotFoundError{AccountNo: accountNo}
		}
		return nil, nil, err
	}
	return account, balance, nil
}
