package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	domain_account "github.com/james-ap-sunny/interbank-transfers/internal/domain/account"
	domain_transfer "github.com/james-ap-sunny/interbank-transfers/internal/domain/transfer"
	port_persistence "github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/persistence"
)

// Tx is one open database transaction. Row locks taken here are released by
// the database when the transaction commits or rolls back.
type Tx struct {
	tx   *sql.Tx
	name string
}

var _ port_persistence.Tx = (*Tx)(nil)

type scannable interface {
	Scan(dest ...any) error
}

func (t *Tx) FindAccountAndBalance(ctx context.Context, accountNo string) (*domain_account.Account, *domain_account.Balance, error) {
	return scanAccountAndBalance(t.tx.QueryRowContext(ctx, accountBalanceQuery, accountNo))
}

func (t *Tx) LockAccountAndBalance(ctx context.Context, accountNo string) (*domain_account.Account, *domain_account.Balance, error) {
	// FOR UPDATE locks both joined rows until this transaction finishes.
	return scanAccountAndBalance(t.tx.QueryRowContext(ctx, accountBalanceQuery+" FOR UPDATE", accountNo))
}

func (t *Tx) UpdateBalance(ctx context.Context, internalKey int64, amount decimal.Decimal, changedAt time.Time) error {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE rb_acct_balance
		SET total_amount = $2, last_change_date = $3
		WHERE internal_key = $1`, internalKey, amount, changedAt)
	if err != nil {
		return fmt.Errorf("update %s balance: %w", t.name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return port_persistence.ErrNotFound
	}
	return nil
}

func (t *Tx) AppendHistory(ctx context.Context, e domain_transfer.HistoryEntry) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO rb_tran_hist (
			seq_no, internal_key, client_no, base_acct_no, tran_type,
			tran_amt, previous_bal_amt, actual_bal, cr_dr_ind, tran_date,
			reference, narrative, tran_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		e.SeqNo, e.InternalKey, e.ClientNo, e.AccountNo, e.TranType,
		e.Amount, e.PreviousBalance, e.NewBalance, e.Indicator, e.Date,
		e.Reference, e.Narrative, e.Status)
	if err != nil {
		return fmt.Errorf("append %s history: %w", t.name, err)
	}
	return nil
}

func (t *Tx) FindActiveRestraints(ctx context.Context, internalKey int64) ([]domain_account.Restraint, error) {
	return queryActiveRestraints(ctx, t.tx, internalKey)
}

func (t *Tx) FindLimits(ctx context.Context, accountNo string) ([]domain_account.TransactionLimit, error) {
	return queryLimits(ctx, t.tx, accountNo)
}

func (t *Tx) CreateTransferLog(ctx context.Context, log *domain_transfer.Log) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO transfer_log (
			transfer_id, from_account, to_account, amount, currency,
			status, error_message, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)`,
		log.TransferID(), log.FromAccount(), log.ToAccount(), log.Amount(),
		log.Currency(), string(log.Status()), log.ErrorMessage(),
		log.CreatedAt(), log.UpdatedAt())
	if err != nil {
		return fmt.Errorf("create %s transfer log: %w", t.name, err)
	}
	return nil
}

// Prepare verifies the transaction is still usable. Writes made through this
// Tx are already visible inside it; there is no separate flush step with
// database/sql, so the prepare phase reduces to a liveness probe.
func (t *Tx) Prepare(ctx context.Context) error {
	var one int
	if err := t.tx.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("prepare %s transaction: %w", t.name, err)
	}
	return nil
}

func (t *Tx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("commit %s transaction: %w", t.name, err)
	}
	return nil
}

func (t *Tx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback %s transaction: %w", t.name, err)
	}
	return nil
}
