package domain_account

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Business-rule failures carry structured detail so callers can branch on the
// cause (and surface limit/balance amounts) instead of parsing messages.

type NotFoundError struct {
	AccountNo string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("account: %s not found", e.AccountNo)
}

type InactiveError struct {
	AccountNo string
	Status    string
}

func (e *InactiveError) Error() string {
	return fmt.Sprintf("account: %s is inactive (status: %s)", e.AccountNo, e.Status)
}

type RestrictedError struct {
	AccountNo      string
	RestraintTypes []string
}

func (e *RestrictedError) Error() string {
	return fmt.Sprintf("account: %s is restricted (%s)", e.AccountNo, strings.Join(e.RestraintTypes, ", "))
}

type InsufficientBalanceError struct {
	AccountNo string
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("account: insufficient balance in %s (available %s, requested %s)",
		e.AccountNo, e.Available.StringFixed(2), e.Requested.StringFixed(2))
}

type TransferLimitExceededError struct {
	LimitType   string
	LimitAmount decimal.Decimal
	Requested   decimal.Decimal
}

func (e *TransferLimitExceededError) Error() string {
	return fmt.Sprintf("account: %s limit exceeded (limit %s, requested %s)",
		e.LimitType, e.LimitAmount.StringFixed(2), e.Requested.StringFixed(2))
}
