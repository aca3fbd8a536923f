package domain_account

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	LimitRefDailyTransfer = "DailyTransferLimit"
)

// TransactionLimit is one per-account limit row. A missing bound means that
// side is not enforced for this row; a missing row means no limit at all.
type TransactionLimit struct {
	AccountNo string
	Ref       string
	Currency  string
	ClientNo  string
	MinAmount decimal.NullDecimal
	MaxAmount decimal.NullDecimal
	Date      time.Time
}

// Check validates the proposed amount against this row's bounds and returns a
// TransferLimitExceededError carrying the violated bound.
func (l TransactionLimit) Check(amount decimal.Decimal) error {
	if l.MinAmount.Valid && amount.LessThan(l.MinAmount.Decimal) {
		return &TransferLimitExceededError{
			LimitType:   l.Ref + " minimum",
			LimitAmount: l.MinAmount.Decimal,
			Requested:   amount,
		}
	}
	if l.MaxAmount.Valid && amount.GreaterThan(l.MaxAmount.Decimal) {
		return &TransferLimitExceededError{
			LimitType:   l.Ref,
			LimitAmount: l.MaxAmount.Decimal,
			Requested:   amount,
		}
	}
	return nil
}
