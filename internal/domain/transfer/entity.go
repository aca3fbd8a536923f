package domain_transfer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Log is one logical transfer attempt. The same log is written as one row in
// each store so that either side can answer "did this transfer happen" on its
// own. It is the durable source of truth for the transfer's outcome.
type Log struct {
	transferID  string
	fromAccount string
	toAccount   string
	amount      decimal.Decimal
	currency    string

	status       Status
	errorMessage string

	createdAt time.Time
	updatedAt time.Time

	pendingEvents []DomainEvent
}

type NewParams struct {
	TransferID  string
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
	Currency    string
	Now         time.Time
}

func New(p NewParams) (*Log, error) {
	if strings.TrimSpace(p.TransferID) == "" {
		return nil, ErrInvalidTransferID
	}

	from := strings.TrimSpace(p.FromAccount)
	to := strings.TrimSpace(p.ToAccount)
	if from == "" || to == "" {
		return nil, ErrMissingAccount
	}

	if from == to {
		return nil, ErrSameAccount
	}

	if !p.Amount.IsPositive() || p.Amount.Exponent() < -2 {
		return nil, ErrInvalidAmount
	}

	cur := strings.ToUpper(strings.TrimSpace(p.Currency))
	if len(cur) != 3 {
		return nil, ErrInvalidCurrency
	}

	if p.Now.IsZero() {
		p.Now = time.Now().UTC()
	}

	l := &Log{
		transferID:  p.TransferID,
		fromAccount: from,
		toAccount:   to,
		amount:      p.Amount,
		currency:    cur,
		status:      StatusPending,
		createdAt:   p.Now,
		updatedAt:   p.Now,
	}

	l.raise(TransferRequested{
		At:          p.Now,
		TransferID:  l.transferID,
		FromAccount: l.fromAccount,
		ToAccount:   l.toAccount,
		Amount:      l.amount,
		Currency:    l.currency,
	})

	return l, nil
}

// RehydrateParams carries a previously persisted ledger row. Rehydrate does
// not validate or raise events; the row was validated when first written.
type RehydrateParams struct {
	TransferID   string
	FromAccount  string
	ToAccount    string
	Amount       decimal.Decimal
	Currency     string
	Status       Status
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func Rehydrate(p RehydrateParams) *Log {
	return &Log{
		transferID:   p.TransferID,
		fromAccount:  p.FromAccount,
		toAccount:    p.ToAccount,
		amount:       p.Amount,
		currency:     p.Currency,
		status:       p.Status,
		errorMessage: p.ErrorMessage,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}
}

// MarkSuccess records that both local transactions committed.
func (l *Log) MarkSuccess(now time.Time) error {
	if l.status.IsFinal() {
		return ErrAlreadyFinalized
	}

	if l.status != StatusPending {
		return ErrInvalidStateTransition
	}

	if now.IsZero() {
		now = time.Now().UTC()
	}

	l.status = StatusSuccess
	l.updatedAt = now

	l.raise(TransferSucceeded{
		At:         now,
		TransferID: l.transferID,
	})

	return nil
}

// MarkRollback records that the transfer was rolled back before any local
// commit finalized, leaving no effect in either store.
func (l *Log) MarkRollback(reason string, now time.Time) error {
	return l.finalize(StatusRollback, reason, now)
}

// MarkFailed records a failure that rollback could not cleanly resolve, such
// as a commit failure after one side already committed. Rows in this state
// are the input to out-of-band reconciliation.
func (l *Log) MarkFailed(reason string, now time.Time) error {
	return l.finalize(StatusFailed, reason, now)
}

func (l *Log) finalize(status Status, reason string, now time.Time) error {
	if l.status.IsFinal() {
		return ErrAlreadyFinalized
	}

	if l.status != StatusPending {
		return ErrInvalidStateTransition
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrMissingFailureReason
	}

	if now.IsZero() {
		now = time.Now().UTC()
	}

	l.status = status
	l.errorMessage = reason
	l.updatedAt = now

	l.raise(TransferFailed{
		At:         now,
		TransferID: l.transferID,
		Status:     status,
		Reason:     reason,
	})

	return nil
}

func (l *Log) PullEvents() []DomainEvent {
	if len(l.pendingEvents) == 0 {
		return nil
	}

	ev := make([]DomainEvent, len(l.pendingEvents))
	copy(ev, l.pendingEvents)

	l.pendingEvents = l.pendingEvents[:0]

	return ev
}

func (l *Log) raise(event DomainEvent) {
	l.pendingEvents = append(l.pendingEvents, event)
}

func (l *Log) TransferID() string { return l.transferID }

func (l *Log) FromAccount() string { return l.fromAccount }

func (l *Log) ToAccount() string { return l.toAccount }

func (l *Log) Amount() decimal.Decimal { return l.amount }

func (l *Log) Currency() string { return l.currency }

func (l *Log) Status() Status { return l.status }

func (l *Log) ErrorMessage() string { return l.errorMessage }

func (l *Log) CreatedAt() time.Time { return l.createdAt }

func (l *Log) UpdatedAt() time.Time { return l.updatedAt }
