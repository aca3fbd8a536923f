package domain_account_test

import (
	"testing"

	domain_account "github.com/james-ap-sunny/interbank-transfers/internal/domain/account"
)

func TestRestraintBlocksTransfers(t *testing.T) {
	cases := []struct {
		name   string
		rType  string
		status string
		want   bool
	}{
		{"active freeze", domain_account.RestraintFreeze, "A", true},
		{"active judicial hold", domain_account.RestraintJudicial, "A", true},
		{"active administrative hold", domain_account.RestraintAdmin, "A", true},
		{"inactive freeze", domain_account.RestraintFreeze, "I", false},
		{"active non-blocking type", "REPORT", "A", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := domain_account.Restraint{Type: tc.rType, Status: tc.status}
			if got := r.BlocksTransfers(); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
