package domain_transfer_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domain_transfer "github.com/james-ap-sunny/interbank-transfers/internal/domain/transfer"
)

func TestNew(t *testing.T) {
	now := time.Now().UTC()
	amount := decimal.RequireFromString("150.75")

	t.Run("creates transfer log with valid parameters", func(t *testing.T) {
		log, err := domain_transfer.New(domain_transfer.NewParams{
			TransferID:  "TRF20260101120000ABCDEF01",
			FromAccount: "6214850212345678",
			ToAccount:   "6228480698765432",
			Amount:      amount,
			Currency:    "CNY",
			Now:         now,
		})

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if log.TransferID() != "TRF20260101120000ABCDEF01" {
			t.Errorf("expected transfer id TRF20260101120000ABCDEF01, got %s", log.TransferID())
		}

		if log.FromAccount() != "6214850212345678" {
			t.Errorf("expected from account 6214850212345678, got %s", log.FromAccount())
		}

		if log.ToAccount() != "6228480698765432" {
			t.Errorf("expected to account 6228480698765432, got %s", log.ToAccount())
		}

		if !log.Amount().Equal(amount) {
			t.Errorf("expected amount %s, got %s", amount, log.Amount())
		}

		if log.Currency() != "CNY" {
			t.Errorf("expected currency CNY, got %s", log.Currency())
		}

		if log.Status() != domain_transfer.StatusPending {
			t.Errorf("expected status pending, got %v", log.Status())
		}

		if !log.CreatedAt().Equal(now) {
			t.Errorf("expected created at %v, got %v", now, log.CreatedAt())
		}

		if !log.UpdatedAt().Equal(now) {
			t.Errorf("expected updated at %v, got %v", now, log.UpdatedAt())
		}
	})

	t.Run("normalizes currency to uppercase", func(t *testing.T) {
		log, err := domain_transfer.New(domain_transfer.NewParams{
			TransferID:  "TRF20260101120000ABCDEF02",
			FromAccount: "6214850212345678",
			ToAccount:   "6228480698765432",
			Amount:      amount,
			Currency:    "cny",
			Now:         now,
		})

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if log.Currency() != "CNY" {
			t.Errorf("expected currency CNY, got %s", log.Currency())
		}
	})

	t.Run("uses current time when Now is zero", func(t *testing.T) {
		log, err := domain_transfer.New(domain_transfer.NewParams{
			TransferID:  "TRF20260101120000ABCDEF03",
			FromAccount: "6214850212345678",
			ToAccount:   "6228480698765432",
			Amount:      amount,
			Currency:    "CNY",
			Now:         time.Time{},
		})

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if log.CreatedAt().IsZero() {
			t.Error("expected created at to be set, got zero time")
		}
	})

	t.Run("raises requested event on creation", func(t *testing.T) {
		log, err := domain_transfer.New(domain_transfer.NewParams{
			TransferID:  "TRF20260101120000ABCDEF04",
			FromAccount: "6214850212345678",
			ToAccount:   "6228480698765432",
			Amount:      amount,
			Currency:    "CNY",
			Now:         now,
		})

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		events := log.PullEvents()
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}

		if events[0].EventName() != "transfer.requested" {
			t.Errorf("expected event transfer.requested, got %s", events[0].EventName())
		}

		if events[0].AggregateID() != log.TransferID() {
			t.Errorf("expected aggregate id %s, got %s", log.TransferID(), events[0].AggregateID())
		}

		if remaining := log.PullEvents(); remaining != nil {
			t.Errorf("expected events to drain, got %d more", len(remaining))
		}
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		valid := domain_transfer.NewParams{
			TransferID:  "TRF20260101120000ABCDEF05",
			FromAccount: "6214850212345678",
			ToAccount:   "6228480698765432",
			Amount:      amount,
			Currency:    "CNY",
			Now:         now,
		}

		cases := []struct {
			name    string
			mutate  func(*domain_transfer.NewParams)
			wantErr error
		}{
			{
				name:    "empty transfer id",
				mutate:  func(p *domain_transfer.NewParams) { p.TransferID = "  " },
				wantErr: domain_transfer.ErrInvalidTransferID,
			},
			{
				name:    "missing from account",
				mutate:  func(p *domain_transfer.NewParams) { p.FromAccount = "" },
				wantErr: domain_transfer.ErrMissingAccount,
			},
			{
				name:    "missing to account",
				mutate:  func(p *domain_transfer.NewParams) { p.ToAccount = "" },
				wantErr: domain_transfer.ErrMissingAccount,
			},
			{
				name:    "same accounts",
				mutate:  func(p *domain_transfer.NewParams) { p.ToAccount = p.FromAccount },
				wantErr: domain_transfer.ErrSameAccount,
			},
			{
				name:    "zero amount",
				mutate:  func(p *domain_transfer.NewParams) { p.Amount = decimal.Zero },
				wantErr: domain_transfer.ErrInvalidAmount,
			},
			{
				name:    "negative amount",
				mutate:  func(p *domain_transfer.NewParams) { p.Amount = decimal.RequireFromString("-10.00") },
				wantErr: domain_transfer.ErrInvalidAmount,
			},
			{
				name:    "more than two decimal places",
				mutate:  func(p *domain_transfer.NewParams) { p.Amount = decimal.RequireFromString("10.005") },
				wantErr: domain_transfer.ErrInvalidAmount,
			},
			{
				name:    "currency not three letters",
				mutate:  func(p *domain_transfer.NewParams) { p.Currency = "RENMINBI" },
				wantErr: domain_transfer.ErrInvalidCurrency,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				params := valid
				tc.mutate(&params)

				_, err := domain_transfer.New(params)
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("expected %v, got %v", tc.wantErr, err)
				}
			})
		}
	})
}

func TestMarkSuccess(t *testing.T) {
	now := time.Now().UTC()
	later := now.Add(2 * time.Second)

	t.Run("moves pending transfer to success", func(t *testing.T) {
		log := newPendingLog(t, now)
		log.PullEvents()

		if err := log.MarkSuccess(later); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if log.Status() != domain_transfer.StatusSuccess {
			t.Errorf("expected status success, got %v", log.Status())
		}

		if !log.UpdatedAt().Equal(later) {
			t.Errorf("expected updated at %v, got %v", later, log.UpdatedAt())
		}

		events := log.PullEvents()
		if len(events) != 1 || events[0].EventName() != "transfer.succeeded" {
			t.Errorf("expected transfer.succeeded event, got %v", events)
		}
	})

	t.Run("rejects double finalization", func(t *testing.T) {
		log := newPendingLog(t, now)

		if err := log.MarkSuccess(later); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if err := log.MarkSuccess(later); !errors.Is(err, domain_transfer.ErrAlreadyFinalized) {
			t.Errorf("expected ErrAlreadyFinalized, got %v", err)
		}
	})
}

func TestMarkRollback(t *testing.T) {
	now := time.Now().UTC()
	later := now.Add(time.Second)

	t.Run("records rollback with reason", func(t *testing.T) {
		log := newPendingLog(t, now)
		log.PullEvents()

		if err := log.MarkRollback("insufficient balance", later); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if log.Status() != domain_transfer.StatusRollback {
			t.Errorf("expected status rollback, got %v", log.Status())
		}

		if log.ErrorMessage() != "insufficient balance" {
			t.Errorf("expected error message to be kept, got %q", log.ErrorMessage())
		}

		events := log.PullEvents()
		if len(events) != 1 || events[0].EventName() != "transfer.failed" {
			t.Errorf("expected transfer.failed event, got %v", events)
		}
	})

	t.Run("requires a reason", func(t *testing.T) {
		log := newPendingLog(t, now)

		if err := log.MarkRollback("  ", later); !errors.Is(err, domain_transfer.ErrMissingFailureReason) {
			t.Errorf("expected ErrMissingFailureReason, got %v", err)
		}
	})
}

func TestMarkFailed(t *testing.T) {
	now := time.Now().UTC()
	later := now.Add(time.Second)

	t.Run("records failure with reason", func(t *testing.T) {
		log := newPendingLog(t, now)

		if err := log.MarkFailed("destination commit failed", later); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if log.Status() != domain_transfer.StatusFailed {
			t.Errorf("expected status failed, got %v", log.Status())
		}
	})

	t.Run("rejects finalizing a rolled back transfer", func(t *testing.T) {
		log := newPendingLog(t, now)

		if err := log.MarkRollback("validation failed", later); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if err := log.MarkFailed("too late", later); !errors.Is(err, domain_transfer.ErrAlreadyFinalized) {
			t.Errorf("expected ErrAlreadyFinalized, got %v", err)
		}
	})
}

func TestRehydrate(t *testing.T) {
	now := time.Now().UTC()

	log := domain_transfer.Rehydrate(domain_transfer.RehydrateParams{
		TransferID:   "TRF20260101120000ABCDEF06",
		FromAccount:  "6214850212345678",
		ToAccount:    "6228480698765432",
		Amount:       decimal.RequireFromString("99.99"),
		Currency:     "CNY",
		Status:       domain_transfer.StatusSuccess,
		ErrorMessage: "",
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	if log.Status() != domain_transfer.StatusSuccess {
		t.Errorf("expected status success, got %v", log.Status())
	}

	if events := log.PullEvents(); events != nil {
		t.Errorf("expected no events from rehydration, got %d", len(events))
	}
}

func newPendingLog(t *testing.T, now time.Time) *domain_transfer.Log {
	t.Helper()

	log, err := domain_transfer.New(domain_transfer.NewParams{
		TransferID:  "TRF20260101120000ABCDEF99",
		FromAccount: "6214850212345678",
		ToAccount:   "6228480698765432",
		Amount:      decimal.RequireFromString("500.00"),
		Currency:    "CNY",
		Now:         now,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return log
}
