package domain_transfer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransferID = errors.New("transfer: invalid transfer id")
	ErrMissingAccount    = errors.New("transfer: from and to accounts are required")
	ErrSameAccount       = errors.New("transfer: from account equals to account")
	ErrInvalidAmount     = errors.New("transfer: amount must be a positive value with at most 2 decimal places")
	ErrInvalidCurrency   = errors.New("transfer: currency must be a 3-letter code")

	ErrInvalidStateTransition = errors.New("transfer: invalid state transition")
	ErrAlreadyFinalized       = errors.New("transfer: transfer already finalized")
	ErrMissingFailureReason   = errors.New("transfer: failure reason is required")
)

// CurrencyMismatchError reports a currency pair that cannot take part in the
// same transfer, either between the two accounts or between the request and
// the source account.
type CurrencyMismatchError struct {
	FromCurrency string
	ToCurrency   string
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("transfer: currency mismatch: %s -> %s", e.FromCurrency, e.ToCurrency)
}

// UnsupportedCurrencyError reports a requested currency outside the configured
// set.
type UnsupportedCurrencyError struct {
	Currency  string
	Supported []string
}

func (e *UnsupportedCurrencyError) Error() string {
	return fmt.Sprintf("transfer: unsupported currency %s", e.Currency)
}
