package domain_transfer

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	IndicatorDebit  = "D"
	IndicatorCredit = "C"

	TranTypeTransfer = "TRANSFER"
	TranStatusNormal = "N"
)

// HistoryEntry is one append-only ledger row in a single store, created for
// each account leg of a successful transfer. Previous and new balances are
// captured so the balance can be reconstructed from history alone.
type HistoryEntry struct {
	SeqNo           string
	InternalKey     int64
	ClientNo        string
	AccountNo       string
	TranType        string
	Amount          decimal.Decimal
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
	Indicator       string
	Date            time.Time
	Reference       string
	Narrative       string
	Status          string
}

type HistoryLegParams struct {
	SeqNo           string
	InternalKey     int64
	ClientNo        string
	AccountNo       string
	Amount          decimal.Decimal
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
	Reference       string
	Narrative       string
	Now             time.Time
}

func NewDebitEntry(p HistoryLegParams) HistoryEntry {
	return newEntry(p, IndicatorDebit)
}

func NewCreditEntry(p HistoryLegParams) HistoryEntry {
	return newEntry(p, IndicatorCredit)
}

func newEntry(p HistoryLegParams, indicator string) HistoryEntry {
	if p.Now.IsZero() {
		p.Now = time.Now().UTC()
	}

	return HistoryEntry{
		SeqNo:           p.SeqNo,
		InternalKey:     p.InternalKey,
		ClientNo:        p.ClientNo,
		AccountNo:       p.AccountNo,
		TranType:        TranTypeTransfer,
		Amount:          p.Amount,
		PreviousBalance: p.PreviousBalance,
		NewBalance:      p.NewBalance,
		Indicator:       indicator,
		Date:            p.Now,
		Reference:       p.Reference,
		Narrative:       p.Narrative,
		Status:          TranStatusNormal,
	}
}
