package domain_transfer

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const idTimeLayout = "20060102150405"

// NewTransferID builds a globally unique transfer identifier: a time-based
// prefix for rough ordering plus a random suffix. Each store additionally
// enforces uniqueness on the id column.
func NewTransferID(now time.Time, id uuid.UUID) string {
	return "TRF" + now.UTC().Format(idTimeLayout) + idSuffix(id)
}

// NewHistorySeqNo builds a unique sequence number for a history row.
func NewHistorySeqNo(now time.Time, id uuid.UUID) string {
	return "TXN" + now.UTC().Format(idTimeLayout) + idSuffix(id)
}

func idSuffix(id uuid.UUID) string {
	return strings.ToUpper(id.String()[:8])
}
