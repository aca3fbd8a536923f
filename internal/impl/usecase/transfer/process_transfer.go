// Package impl_transfer is the transfer orchestrator: it validates a request,
// opens one coordinated transaction pair, runs the lock/debit/credit sequence
// against both stores, and drives the coordinator to commit or roll back.
package impl_transfer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domain_account "github.com/james-ap-sunny/interbank-transfers/internal/domain/account"
	domain_transfer "github.com/james-ap-sunny/interbank-transfers/internal/domain/transfer"
	"github.com/james-ap-sunny/interbank-transfers/internal/impl/coordinator"
	impl_account "github.com/james-ap-sunny/interbank-transfers/internal/impl/service/account"
	"github.com/james-ap-sunny/interbank-transfers/internal/metrics"
	port_persistence "github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/persistence"
	port_platform "github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/platform"
	port_transfer "github.com/james-ap-sunny/interbank-transfers/internal/ports/usecase/transfer"
)

// Config carries the externally supplied business rules, read once at
// construction.
type Config struct {
	MinTransferAmount   decimal.Decimal
	MaxTransferAmount   decimal.Decimal
	SupportedCurrencies []string
	TransactionTimeout  time.Duration
}

type TransferUsecaseImpl struct {
	source port_persistence.Store
	dest   port_persistence.Store
	clock  port_platform.Clock
	ids    port_platform.IDGenerator
	cfg    Config
	log    *zap.Logger
	stats  *metrics.TransferMetrics
}

func NewTransferUsecaseImpl(
	source port_persistence.Store,
	dest port_persistence.Store,
	clock port_platform.Clock,
	ids port_platform.IDGenerator,
	cfg Config,
	log *zap.Logger,
	stats *metrics.TransferMetrics,
) *TransferUsecaseImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &TransferUsecaseImpl{
		source: source,
		dest:   dest,
		clock:  clock,
		ids:    ids,
		cfg:    cfg,
		log:    log,
		stats:  stats,
	}
}

var _ port_transfer.TransferUseCase = (*TransferUsecaseImpl)(nil)

func (u *TransferUsecaseImpl) Process(ctx context.Context, in port_transfer.ProcessTransferInput) (port_transfer.ProcessTransferOutput, error) {
	start := u.clock.Now()

	if err := u.Validate(in); err != nil {
		u.countOutcome("rejected")
		return port_transfer.ProcessTransferOutput{}, err
	}

	in.FromAccount = strings.TrimSpace(in.FromAccount)
	in.ToAccount = strings.TrimSpace(in.ToAccount)
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))

	transferID := domain_transfer.NewTransferID(u.clock.Now(), u.ids.NewUUID())
	log := u.log.With(zap.String("transfer_id", transferID))
	log.Info("processing transfer",
		zap.String("from_account", in.FromAccount),
		zap.String("to_account", in.ToAccount),
		zap.String("amount", in.Amount.StringFixed(2)),
		zap.String("currency", in.Currency))

	ledger, err := domain_transfer.New(domain_transfer.NewParams{
		TransferID:  transferID,
		FromAccount: in.FromAccount,
		ToAccount:   in.ToAccount,
		Amount:      in.Amount,
		Currency:    in.Currency,
		Now:         u.clock.Now(),
	})
	if err != nil {
		u.countOutcome("rejected")
		return port_transfer.ProcessTransferOutput{}, err
	}
	u.emitEvents(ledger.PullEvents(), log)

	if u.cfg.TransactionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.cfg.TransactionTimeout)
		defer cancel()
	}

	coord := coordinator.New(u.source, u.dest, log)
	if err := coord.Begin(ctx); err != nil {
		u.countPhaseFailure(err)
		u.countOutcome(string(domain_transfer.StatusFailed))
		if markErr := ledger.MarkFailed(err.Error(), u.clock.Now()); markErr == nil {
			u.emitEvents(ledger.PullEvents(), log)
		}
		return port_transfer.ProcessTransferOutput{}, &TransferError{TransferID: transferID, Err: err}
	}

	out, err := u.execute(ctx, coord, ledger, in, log)
	if err != nil {
		u.resolveFailure(ctx, coord, ledger, err, log)
		return port_transfer.ProcessTransferOutput{}, &TransferError{TransferID: transferID, Err: err}
	}

	// Outcome is decided; the status update is a separate best-effort side
	// effect whose failure never reverses the committed transfer.
	u.updateLedgerBoth(context.WithoutCancel(ctx), transferID, domain_transfer.StatusSuccess, "", log)

	u.countOutcome(string(domain_transfer.StatusSuccess))
	u.observeDuration(start)
	log.Info("transfer completed",
		zap.String("source_new_balance", out.SourceNewBalance.StringFixed(2)),
		zap.String("dest_new_balance", out.DestNewBalance.StringFixed(2)))
	return out, nil
}

func (u *TransferUsecaseImpl) execute(
	ctx context.Context,
	coord *coordinator.Coordinator,
	ledger *domain_transfer.Log,
	in port_transfer.ProcessTransferInput,
	log *zap.Logger,
) (port_transfer.ProcessTransferOutput, error) {
	var out port_transfer.ProcessTransferOutput
	transferID := ledger.TransferID()

	sourceSvc := impl_account.New(coord.SourceTx(), log)
	destSvc := impl_account.New(coord.DestTx(), log)

	type leg struct {
		svc       *impl_account.Service
		accountNo string
		role      impl_account.Role
		account   *domain_account.Account
	}
	legs := []*leg{
		{svc: sourceSvc, accountNo: in.FromAccount, role: impl_account.RoleSource},
		{svc: destSvc, accountNo: in.ToAccount, role: impl_account.RoleDestination},
	}

	// Locks are always taken in ascending account-number order, regardless of
	// which side is debited, so two opposite-direction transfers over the
	// same pair cannot deadlock each other.
	if legs[1].accountNo < legs[0].accountNo {
		legs[0], legs[1] = legs[1], legs[0]
	}

	var sourceAcct, destAcct *domain_account.Account
	for _, l := range legs {
		account, _, err := l.svc.ValidateForTransfer(ctx, l.accountNo, l.role)
		if err != nil {
			return out, err
		}
		l.account = account
		if l.role == impl_account.RoleSource {
			sourceAcct = account
		} else {
			destAcct = account
		}
	}

	if err := sourceSvc.CheckTransferLimits(ctx, in.FromAccount, in.Amount); err != nil {
		return out, err
	}
	if err := sourceSvc.EnsureSufficientBalance(ctx, in.FromAccount, in.Amount); err != nil {
		return out, err
	}

	if !sourceAcct.SameCurrency(destAcct.Currency) {
		return out, &domain_transfer.CurrencyMismatchError{FromCurrency: sourceAcct.Currency, ToCurrency: destAcct.Currency}
	}
	if !sourceAcct.SameCurrency(in.Currency) {
		return out, &domain_transfer.CurrencyMismatchError{FromCurrency: in.Currency, ToCurrency: sourceAcct.Currency}
	}

	now := ledger.CreatedAt()

	// One PENDING row per store, committed together with that store's
	// balance change.
	if err := coord.SourceTx().CreateTransferLog(ctx, ledger); err != nil {
		return out, err
	}
	destRow := domain_transfer.Rehydrate(domain_transfer.RehydrateParams{
		TransferID:  transferID,
		FromAccount: in.FromAccount,
		ToAccount:   in.ToAccount,
		Amount:      in.Amount,
		Currency:    in.Currency,
		Status:      domain_transfer.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err := coord.DestTx().CreateTransferLog(ctx, destRow); err != nil {
		return out, err
	}

	debit, err := sourceSvc.Debit(ctx, in.FromAccount, in.Amount, now)
	if err != nil {
		return out, err
	}
	credit, err := destSvc.Credit(ctx, in.ToAccount, in.Amount, now)
	if err != nil {
		return out, err
	}

	debitNarrative := "Transfer to " + in.ToAccount
	creditNarrative := "Transfer from " + in.FromAccount
	if desc := strings.TrimSpace(in.Description); desc != "" {
		debitNarrative = desc
		creditNarrative = desc
	}

	debitEntry := domain_transfer.NewDebitEntry(domain_transfer.HistoryLegParams{
		SeqNo:           domain_transfer.NewHistorySeqNo(now, u.ids.NewUUID()),
		InternalKey:     debit.Account.InternalKey,
		ClientNo:        debit.Account.ClientNo,
		AccountNo:       debit.Account.AccountNo,
		Amount:          debit.Amount,
		PreviousBalance: debit.PreviousBalance,
		NewBalance:      debit.NewBalance,
		Reference:       transferID,
		Narrative:       debitNarrative,
		Now:             now,
	})
	if err := coord.SourceTx().AppendHistory(ctx, debitEntry); err != nil {
		return out, err
	}

	creditEntry := domain_transfer.NewCreditEntry(domain_transfer.HistoryLegParams{
		SeqNo:           domain_transfer.NewHistorySeqNo(now, u.ids.NewUUID()),
		InternalKey:     credit.Account.InternalKey,
		ClientNo:        credit.Account.ClientNo,
		AccountNo:       credit.Account.AccountNo,
		Amount:          credit.Amount,
		PreviousBalance: credit.PreviousBalance,
		NewBalance:      credit.NewBalance,
		Reference:       transferID,
		Narrative:       creditNarrative,
		Now:             now,
	})
	if err := coord.DestTx().AppendHistory(ctx, creditEntry); err != nil {
		return out, err
	}

	if err := coord.Prepare(ctx); err != nil {
		return out, err
	}
	if err := coord.Commit(ctx); err != nil {
		return out, err
	}

	completedAt := u.clock.Now()
	if err := ledger.MarkSuccess(completedAt); err == nil {
		u.emitEvents(ledger.PullEvents(), log)
	}

	return port_transfer.ProcessTransferOutput{
		TransferID:       transferID,
		FromAccount:      in.FromAccount,
		ToAccount:        in.ToAccount,
		Amount:           in.Amount,
		Currency:         in.Currency,
		Status:           domain_transfer.StatusSuccess,
		SourceNewBalance: debit.NewBalance,
		DestNewBalance:   credit.NewBalance,
		CompletedAt:      completedAt,
	}, nil
}

// resolveFailure settles a failed attempt. Everything up to the commit phase
// is cleanly rolled back; a destination commit failure after the source
// committed cannot be, so it is recorded as FAILED for reconciliation and
// logged loudly instead.
func (u *TransferUsecaseImpl) resolveFailure(
	ctx context.Context,
	coord *coordinator.Coordinator,
	ledger *domain_transfer.Log,
	cause error,
	log *zap.Logger,
) {
	ctx = context.WithoutCancel(ctx)
	transferID := ledger.TransferID()

	status := domain_transfer.StatusRollback
	message := cause.Error()

	var commitErr *coordinator.CommitError
	if errors.As(cause, &commitErr) && commitErr.SourceCommitted {
		status = domain_transfer.StatusFailed
		message = "destination commit failed after source commit, reconciliation required: " + commitErr.Err.Error()
		log.Error("transfer left stores divergent, escalating for reconciliation",
			zap.Error(commitErr.Err))
	} else if coord.Active() {
		if err := coord.Rollback(ctx); err != nil {
			log.Error("rollback failed", zap.Error(err))
		}
	}

	var markErr error
	if status == domain_transfer.StatusFailed {
		markErr = ledger.MarkFailed(message, u.clock.Now())
	} else {
		markErr = ledger.MarkRollback(message, u.clock.Now())
	}
	if markErr == nil {
		u.emitEvents(ledger.PullEvents(), log)
	}

	u.countPhaseFailure(cause)
	u.countOutcome(string(status))
	u.updateLedgerBoth(ctx, transferID, status, message, log)
	log.Warn("transfer failed", zap.String("status", string(status)), zap.Error(cause))
}

// updateLedgerBoth applies the final status to each store's ledger row
// independently. Failures are observability debt, not correctness
// violations; they are logged and left to out-of-band reconciliation.
func (u *TransferUsecaseImpl) updateLedgerBoth(
	ctx context.Context,
	transferID string,
	status domain_transfer.Status,
	message string,
	log *zap.Logger,
) {
	if err := u.source.UpdateTransferLogStatus(ctx, transferID, status, message); err != nil {
		log.Error("failed to update transfer log status in source store", zap.Error(err))
	}
	if err := u.dest.UpdateTransferLogStatus(ctx, transferID, status, message); err != nil {
		log.Error("failed to update transfer log status in destination store", zap.Error(err))
	}
}

func (u *TransferUsecaseImpl) emitEvents(events []domain_transfer.DomainEvent, log *zap.Logger) {
	for _, e := range events {
		log.Info("audit event",
			zap.String("event", e.EventName()),
			zap.String("transfer_id", e.AggregateID()),
			zap.Time("occurred_at", e.OccurredAt()))
	}
}

func (u *TransferUsecaseImpl) countOutcome(status string) {
	if u.stats == nil {
		return
	}
	u.stats.TransfersTotal.WithLabelValues(status).Inc()
}

func (u *TransferUsecaseImpl) countPhaseFailure(err error) {
	if u.stats == nil {
		return
	}
	var commitErr *coordinator.CommitError
	if errors.As(err, &commitErr) {
		u.stats.PhaseFailures.WithLabelValues(string(coordinator.PhaseCommitFailed)).Inc()
		return
	}
	var coordErr *coordinator.Error
	if errors.As(err, &coordErr) {
		u.stats.PhaseFailures.WithLabelValues(string(coordErr.Phase)).Inc()
	}
}

func (u *TransferUsecaseImpl) observeDuration(start time.Time) {
	if u.stats == nil {
		return
	}
	u.stats.TransferDuration.Observe(u.clock.Now().Sub(start).Seconds())
}
