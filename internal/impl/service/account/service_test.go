package impl_account_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	domain_account "github.com/james-ap-sunny/interbank-transfers/internal/domain/account"
	impl_account "github.com/james-ap-sunny/interbank-transfers/internal/impl/service/account"
	gwmocks "github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/mocks"
	port_persistence "github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/persistence"
)

const testAccountNo = "6214850212345678"

func activeAccount() (*domain_account.Account, *domain_account.Balance) {
	account := &domain_account.Account{
		InternalKey: 42,
		ClientNo:    "C0001",
		AccountNo:   testAccountNo,
		Currency:    "CNY",
		Status:      "A",
	}
	balance := &domain_account.Balance{
		InternalKey: 42,
		ClientNo:    "C0001",
		Amount:      decimal.RequireFromString("500.00"),
	}
	return account, balance
}

func TestValidateForTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("passes an active unrestrained account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := gwmocks.NewMockTx(ctrl)
		account, balance := activeAccount()

		tx.EXPECT().LockAccountAndBalance(gomock.Any(), testAccountNo).Return(account, balance, nil)
		tx.EXPECT().FindActiveRestraints(gomock.Any(), int64(42)).Return(nil, nil)

		svc := impl_account.New(tx, nil)

		got, _, err := svc.ValidateForTransfer(ctx, testAccountNo, impl_account.RoleSource)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.AccountNo != testAccountNo {
			t.Errorf("expected account %s, got %s", testAccountNo, got.AccountNo)
		}
	})

	t.Run("maps missing account to NotFoundError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := gwmocks.NewMockTx(ctrl)
		tx.EXPECT().LockAccountAndBalance(gomock.Any(), testAccountNo).
			Return(nil, nil, port_persistence.ErrNotFound)

		svc := impl_account.New(tx, nil)

		_, _, err := svc.ValidateForTransfer(ctx, testAccountNo, impl_account.RoleSource)

		var notFound *domain_account.NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("rejects an inactive account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := gwmocks.NewMockTx(ctrl)
		account, balance := activeAccount()
		account.Status = "F"

		tx.EXPECT().LockAccountAndBalance(gomock.Any(), testAccountNo).Return(account, balance, nil)

		svc := impl_account.New(tx, nil)

		_, _, err := svc.ValidateForTransfer(ctx, testAccountNo, impl_account.RoleDestination)

		var inactive *domain_account.InactiveError
		if !errors.As(err, &inactive) {
			t.Fatalf("expected InactiveError, got %v", err)
		}
		if inactive.Status != "F" {
			t.Errorf("expected status F in error, got %s", inactive.Status)
		}
	})

	t.Run("rejects an account with an active freeze", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := gwmocks.NewMockTx(ctrl)
		account, balance := activeAccount()

		tx.EXPECT().LockAccountAndBalance(gomock.Any(), testAccountNo).Return(account, balance, nil)
		tx.EXPECT().FindActiveRestraints(gomock.Any(), int64(42)).Return([]domain_account.Restraint{
			{InternalKey: 42, Type: domain_account.RestraintFreeze, Status: "A"},
		}, nil)

		svc := impl_account.New(tx, nil)

		_, _, err := svc.ValidateForTransfer(ctx, testAccountNo, impl_account.RoleSource)

		var restricted *domain_account.RestrictedError
		if !errors.As(err, &restricted) {
			t.Fatalf("expected RestrictedError, got %v", err)
		}
	})

	t.Run("ignores non-blocking restraints", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := gwmocks.NewMockTx(ctrl)
		account, balance := activeAccount()

		tx.EXPECT().LockAccountAndBalance(gomock.Any(), testAccountNo).Return(account, balance, nil)
		tx.EXPECT().FindActiveRestraints(gomock.Any(), int64(42)).Return([]domain_account.Restraint{
			{InternalKey: 42, Type: "REPORT", Status: "A"},
		}, nil)

		svc := impl_account.New(tx, nil)

		if _, _, err := svc.ValidateForTransfer(ctx, testAccountNo, impl_account.RoleSource); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestCheckTransferLimits(t *testing.T) {
	ctx := context.Background()

	t.Run("applies every limit row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := gwmocks.NewMockTx(ctrl)
		tx.EXPECT().FindLimits(gomock.Any(), testAccountNo).Return([]domain_account.TransactionLimit{
			{Ref: "SingleTransferLimit", MaxAmount: decimal.NewNullDecimal(decimal.RequireFromString("50000.00"))},
			{Ref: domain_account.LimitRefDailyTransfer, MaxAmount: decimal.NewNullDecimal(decimal.RequireFromString("1000.00"))},
		}, nil)

		svc := impl_account.New(tx, nil)

		err := svc.CheckTransferLimits(ctx, testAccountNo, decimal.RequireFromString("2000.00"))

		var exceeded *domain_account.TransferLimitExceededError
		if !errors.As(err, &exceeded) {
			t.Fatalf("expected TransferLimitExceededError, got %v", err)
		}
	})

	t.Run("no rows means no limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := gwmocks.NewMockTx(ctrl)
		tx.EXPECT().FindLimits(gomock.Any(), testAccountNo).Return(nil, nil)

		svc := impl_account.New(tx, nil)

		if err := svc.CheckTransferLimits(ctx, testAccountNo, decimal.RequireFromString("999999.00")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestDebit(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("re-checks the balance under the lock and stages the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := gwmocks.NewMockTx(ctrl)
		account, balance := activeAccount()

		tx.EXPECT().LockAccountAndBalance(gomock.Any(), testAccountNo).Return(account, balance, nil)
		tx.EXPECT().UpdateBalance(gomock.Any(), int64(42), decimal.RequireFromString("300.00"), now).Return(nil)

		svc := impl_account.New(tx, nil)

		result, err := svc.Debit(ctx, testAccountNo, decimal.RequireFromString("200.00"), now)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !result.PreviousBalance.Equal(decimal.RequireFromString("500.00")) {
			t.Errorf("expected previous balance 500.00, got %s", result.PreviousBalance)
		}
		if !result.NewBalance.Equal(decimal.RequireFromString("300.00")) {
			t.Errorf("expected new balance 300.00, got %s", result.NewBalance)
		}
	})

	t.Run("rejects overdraw without staging a write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := gwmocks.NewMockTx(ctrl)
		account, balance := activeAccount()

		tx.EXPECT().LockAccountAndBalance(gomock.Any(), testAccountNo).Return(account, balance, nil)
		tx.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		svc := impl_account.New(tx, nil)

		_, err := svc.Debit(ctx, testAccountNo, decimal.RequireFromString("500.01"), now)

		var insufficient *domain_account.InsufficientBalanceError
		if !errors.As(err, &insufficient) {
			t.Fatalf("expected InsufficientBalanceError, got %v", err)
		}
	})
}

func TestCredit(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := gwmocks.NewMockTx(ctrl)
	account, balance := activeAccount()

	tx.EXPECT().LockAccountAndBalance(gomock.Any(), testAccountNo).Return(account, balance, nil)
	tx.EXPECT().UpdateBalance(gomock.Any(), int64(42), decimal.RequireFromString("700.00"), now).Return(nil)

	svc := impl_account.New(tx, nil)

	result, err := svc.Credit(ctx, testAccountNo, decimal.RequireFromString("200.00"), now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !result.NewBalance.Equal(decimal.RequireFromString("700.00")) {
		t.Errorf("expected new balance 700.00, got %s", result.NewBalance)
	}
}
