package domain_account_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domain_account "github.com/james-ap-sunny/interbank-transfers/internal/domain/account"
)

func TestTransactionLimitCheck(t *testing.T) {
	limit := domain_account.TransactionLimit{
		Ref:       domain_account.LimitRefDailyTransfer,
		MinAmount: decimal.NewNullDecimal(decimal.RequireFromString("0.01")),
		MaxAmount: decimal.NewNullDecimal(decimal.RequireFromString("100000.00")),
	}

	t.Run("accepts amount inside bounds", func(t *testing.T) {
		if err := limit.Check(decimal.RequireFromString("50000.00")); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("accepts amounts exactly on each bound", func(t *testing.T) {
		if err := limit.Check(decimal.RequireFromString("0.01")); err != nil {
			t.Errorf("expected min bound to be inclusive, got %v", err)
		}
		if err := limit.Check(decimal.RequireFromString("100000.00")); err != nil {
			t.Errorf("expected max bound to be inclusive, got %v", err)
		}
	})

	t.Run("rejects amount above maximum", func(t *testing.T) {
		err := limit.Check(decimal.RequireFromString("100000.01"))

		var exceeded *domain_account.TransferLimitExceededError
		if !errors.As(err, &exceeded) {
			t.Fatalf("expected TransferLimitExceededError, got %v", err)
		}

		if !exceeded.LimitAmount.Equal(decimal.RequireFromString("100000.00")) {
			t.Errorf("expected limit amount 100000.00, got %s", exceeded.LimitAmount)
		}
	})

	t.Run("rejects amount below minimum", func(t *testing.T) {
		err := limit.Check(decimal.RequireFromString("0.001"))

		var exceeded *domain_account.TransferLimitExceededError
		if !errors.As(err, &exceeded) {
			t.Fatalf("expected TransferLimitExceededError, got %v", err)
		}
	})

	t.Run("missing bounds are not enforced", func(t *testing.T) {
		open := domain_account.TransactionLimit{Ref: domain_account.LimitRefDailyTransfer}

		if err := open.Check(decimal.RequireFromString("999999999.99")); err != nil {
			t.Errorf("expected no error for unbounded limit, got %v", err)
		}
	})
}
