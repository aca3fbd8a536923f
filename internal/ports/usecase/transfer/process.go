package port_transfer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domain_transfer "github.com/james-ap-sunny/interbank-transfers/internal/domain/transfer"
)

type ProcessTransferInput struct {
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
	Currency    string
	Description string
}

type ProcessTransferOutput struct {
	TransferID       string
	FromAccount      string
	ToAccount        string
	Amount           decimal.Decimal
	Currency         string
	Status           domain_transfer.Status
	SourceNewBalance decimal.Decimal
	DestNewBalance   decimal.Decimal
	CompletedAt      time.Time
}

type TransferUseCase interface {
	// Process moves money from the source-store account to the
	// destination-store account, atomically across both stores.
	Process(ctx context.Context, in ProcessTransferInput) (ProcessTransferOutput, error)

	// Validate runs the structural checks of Process without touching either
	// store.
	Validate(in ProcessTransferInput) error

	Status(ctx context.Context, transferID string) (*domain_transfer.Log, error)

	// History returns ledger rows touching the account, newest first:
	// outgoing rows from the source store merged with incoming rows from the
	// destination store.
	History(ctx context.Context, accountNo string, limit, offset int) ([]*domain_transfer.Log, error)
}
