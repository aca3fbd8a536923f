package domain_account

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RestraintStatusActive   = "A"
	RestraintStatusInactive = "I"

	RestraintFreeze   = "FREEZE"
	RestraintJudicial = "JUDICIAL"
	RestraintAdmin    = "ADMIN"
)

// Restraint is an account-level hold. Only active holds of a transfer-blocking
// type keep the account out of transfers.
type Restraint struct {
	InternalKey int64
	Type        string
	SeqNo       string
	ClientNo    string
	Amount      decimal.Decimal
	Status      string
	RecordedAt  time.Time
}

func (r Restraint) IsActive() bool {
	return r.Status == RestraintStatusActive
}

func (r Restraint) isFreezeType() bool {
	switch r.Type {
	case RestraintFreeze, RestraintJudicial, RestraintAdmin:
		return true
	}
	return false
}

// BlocksTransfers reports whether this restraint keeps the account from
// participating in a transfer, on either side.
func (r Restraint) BlocksTransfers() bool {
	return r.IsActive() && r.isFreezeType()
}
