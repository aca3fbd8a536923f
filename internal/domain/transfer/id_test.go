package domain_transfer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	domain_transfer "github.com/james-ap-sunny/interbank-transfers/internal/domain/transfer"
)

func TestNewTransferID(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 30, 45, 0, time.UTC)
	id := uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")

	got := domain_transfer.NewTransferID(now, id)

	if got != "TRF20260115093045A1B2C3D4" {
		t.Errorf("expected TRF20260115093045A1B2C3D4, got %s", got)
	}

	if len(got) != 25 {
		t.Errorf("expected 25 characters, got %d", len(got))
	}
}

func TestNewHistorySeqNo(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 30, 45, 0, time.UTC)
	id := uuid.MustParse("deadbeef-0000-0000-0000-000000000000")

	got := domain_transfer.NewHistorySeqNo(now, id)

	if !strings.HasPrefix(got, "TXN20260115093045") {
		t.Errorf("expected TXN time prefix, got %s", got)
	}

	if !strings.HasSuffix(got, "DEADBEEF") {
		t.Errorf("expected uppercase uuid suffix, got %s", got)
	}
}
