package domain_transfer

import (
	"time"

	"github.com/shopspring/decimal"
)

// DomainEvent is one lifecycle step of a transfer, emitted for the audit
// sink. Failure to deliver an event never affects the transfer outcome.
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
	AggregateID() string
}

type TransferRequested struct {
	At         time.Time
	TransferID string

	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
	Currency    string
}

func (e TransferRequested) EventName() string { return "transfer.requested" }

func (e TransferRequested) OccurredAt() time.Time { return e.At }

func (e TransferRequested) AggregateID() string { return e.TransferID }

type TransferSucceeded struct {
	At         time.Time
	TransferID string
}

func (e TransferSucceeded) EventName() string { return "transfer.succeeded" }

func (e TransferSucceeded) OccurredAt() time.Time { return e.At }

func (e TransferSucceeded) AggregateID() string { return e.TransferID }

type TransferFailed struct {
	At         time.Time
	TransferID string
	Status     Status
	Reason     string
}

func (e TransferFailed) EventName() string { return "transfer.failed" }

func (e TransferFailed) OccurredAt() time.Time { return e.At }

func (e TransferFailed) AggregateID() string { return e.TransferID }
