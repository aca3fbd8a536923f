package impl_transfer

import (
	"context"
	"errors"
	"sort"

	domain_transfer "github.com/james-ap-sunny/interbank-transfers/internal/domain/transfer"
	port_persistence "github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/persistence"
)

// Status looks a transfer up by id, trying the source store first and
// falling back to the destination store.
func (u *TransferUsecaseImpl) Status(ctx context.Context, transferID string) (*domain_transfer.Log, error) {
	log, err := u.source.FindTransferLog(ctx, transferID)
	if err == nil {
		return log, nil
	}
	if !errors.Is(err, port_persistence.ErrNotFound) {
		return nil, err
	}
	return u.dest.FindTransferLog(ctx, transferID)
}

// History merges the account's outgoing rows (source store) and incoming
// rows (destination store), newest first.
func (u *TransferUsecaseImpl) History(ctx context.Context, accountNo string, limit, offset int) ([]*domain_transfer.Log, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	fetch := limit + offset

	outgoing, err := u.source.ListOutgoingTransfers(ctx, accountNo, fetch)
	if err != nil {
		return nil, err
	}
	incoming, err := u.dest.ListIncomingTransfers(ctx, accountNo, fetch)
	if err != nil {
		return nil, err
	}

	merged := make([]*domain_transfer.Log, 0, len(outgoing)+len(incoming))
	merged = append(merged, outgoing...)
	merged = append(merged, incoming...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt().After(merged[j].CreatedAt())
	})

	if offset >= len(merged) {
		return nil, nil
	}
	merged = merged[offset:]
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}
