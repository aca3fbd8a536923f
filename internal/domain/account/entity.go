package domain_account

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusActive = "A"
)

// Account is one deposit account as held by a single store. The internal key
// is the store-local surrogate key; the account number is the external
// identifier callers use.
type Account struct {
	InternalKey int64
	ClientNo    string
	AccountNo   string
	Name        string
	Currency    string
	Status      string
	Branch      string
	OpenedAt    time.Time
}

func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}

func (a *Account) SameCurrency(currency string) bool {
	return a.Currency == currency
}

// Balance is the current total amount for one account, keyed by the account's
// internal key. It is only mutated through Debit and Credit, and only while
// the owning row is locked inside a local transaction.
type Balance struct {
	InternalKey int64
	ClientNo    string
	Amount      decimal.Decimal
	LastChange  time.Time
}

func (b *Balance) HasSufficient(amount decimal.Decimal) bool {
	return b.Amount.GreaterThanOrEqual(amount)
}

// Debit subtracts amount from the balance. The balance never goes negative;
// an attempt to overdraw returns InsufficientBalanceError with the amounts
// observed under the lock.
func (b *Balance) Debit(accountNo string, amount decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if !b.HasSufficient(amount) {
		return b.Amount, &InsufficientBalanceError{
			AccountNo: accountNo,
			Available: b.Amount,
			Requested: amount,
		}
	}

	b.Amount = b.Amount.Sub(amount)
	b.LastChange = now
	return b.Amount, nil
}

// Credit adds amount to the balance unconditionally.
func (b *Balance) Credit(amount decimal.Decimal, now time.Time) decimal.Decimal {
	b.Amount = b.Amount.Add(amount)
	b.LastChange = now
	return b.Amount
}
