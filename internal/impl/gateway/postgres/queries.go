package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	domain_account "github.com/james-ap-sunny/interbank-transfers/internal/domain/account"
	domain_transfer "github.com/james-ap-sunny/interbank-transfers/internal/domain/transfer"
	port_persistence "github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/persistence"
)

// querier is the subset of database/sql shared by *sql.DB and *sql.Tx, so
// the same read queries serve both the pool and an open transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func scanAccountAndBalance(row scannable) (*domain_account.Account, *domain_account.Balance, error) {
	var a domain_account.Account
	var b domain_account.Balance

	err := row.Scan(
		&a.InternalKey, &a.ClientNo, &a.AccountNo, &a.Name,
		&a.Currency, &a.Status, &a.Branch, &a.OpenedAt,
		&b.Amount, &b.LastChange,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, port_persistence.ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("scan account and balance: %w", err)
	}

	b.InternalKey = a.InternalKey
	b.ClientNo = a.ClientNo
	return &a, &b, nil
}

func queryActiveRestraints(ctx context.Context, q querier, internalKey int64) ([]domain_account.Restraint, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT internal_key, restraint_type, res_seq_no, COALESCE(client_no, ''),
			real_restraint_amt, restraints_status, recorded_at
		FROM rb_restraints
		WHERE internal_key = $1 AND restraints_status = $2`,
		internalKey, domain_account.RestraintStatusActive)
	if err != nil {
		return nil, fmt.Errorf("query restraints: %w", err)
	}
	defer rows.Close()

	var restraints []domain_account.Restraint
	for rows.Next() {
		var r domain_account.Restraint
		if err := rows.Scan(
			&r.InternalKey, &r.Type, &r.SeqNo, &r.ClientNo,
			&r.Amount, &r.Status, &r.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("scan restraint: %w", err)
		}
		restraints = append(restraints, r)
	}
	return restraints, rows.Err()
}

func queryLimits(ctx context.Context, q querier, accountNo string) ([]domain_account.TransactionLimit, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT base_acct_no, limit_ref, COALESCE(acct_ccy, ''), COALESCE(client_no, ''),
			limit_min_amt, limit_max_amt, tran_date
		FROM rb_lm_client_tran_limit
		WHERE base_acct_no = $1`, accountNo)
	if err != nil {
		return nil, fmt.Errorf("query limits: %w", err)
	}
	defer rows.Close()

	var limits []domain_account.TransactionLimit
	for rows.Next() {
		var l domain_account.TransactionLimit
		if err := rows.Scan(
			&l.AccountNo, &l.Ref, &l.Currency, &l.ClientNo,
			&l.MinAmount, &l.MaxAmount, &l.Date,
		); err != nil {
			return nil, fmt.Errorf("scan limit: %w", err)
		}
		limits = append(limits, l)
	}
	return limits, rows.Err()
}

func scanTransferLog(row scannable) (*domain_transfer.Log, error) {
	p, err := scanTransferLogParams(row)
	if err != nil {
		return nil, err
	}
	return domain_transfer.Rehydrate(p), nil
}

func scanTransferLogRow(rows *sql.Rows) (*domain_transfer.Log, error) {
	p, err := scanTransferLogParams(rows)
	if err != nil {
		return nil, err
	}
	return domain_transfer.Rehydrate(p), nil
}

func scanTransferLogParams(row scannable) (domain_transfer.RehydrateParams, error) {
	var p domain_transfer.RehydrateParams
	var status string

	err := row.Scan(
		&p.TransferID, &p.FromAccount, &p.ToAccount, &p.Amount, &p.Currency,
		&status, &p.ErrorMessage, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return p, port_persistence.ErrNotFound
	}
	if err != nil {
		return p, fmt.Errorf("scan transfer log: %w", err)
	}

	p.Status = domain_transfer.Status(status)
	if !p.Status.IsValid() {
		return p, fmt.Errorf("transfer log %s: unknown status %q", p.TransferID, status)
	}
	return p, nil
}
