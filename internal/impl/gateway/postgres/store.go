// Package postgres implements the account store capability over one
// PostgreSQL database. Each process holds two of these stores, one per side
// of the transfer.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	domain_account "github.com/james-ap-sunny/interbank-transfers/internal/domain/account"
	domain_transfer "github.com/james-ap-sunny/interbank-transfers/internal/domain/transfer"
	port_persistence "github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/persistence"
)

// Config holds one database's connection settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (c Config) dsn() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

type Store struct {
	db   *sql.DB
	name string
	log  *zap.Logger
}

var _ port_persistence.Store = (*Store)(nil)

// Open connects the pool, verifies connectivity and ensures the schema
// exists.
func Open(cfg Config, name string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := sql.Open("postgres", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", name, err)
	}

	if cfg.MaxOpenConns <= 0 {
		cfg.MaxOpenConns = 25
	}
	if cfg.MaxIdleConns <= 0 {
		cfg.MaxIdleConns = 5
	}
	if cfg.ConnMaxLifetime <= 0 {
		cfg.ConnMaxLifetime = 5 * time.Minute
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", name, err)
	}

	s := &Store{db: db, name: name, log: log.Named(name)}
	if err := s.initTables(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("init %s schema: %w", name, err)
	}

	s.log.Info("database connected")
	return s, nil
}

func (s *Store) initTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS rb_acct (
			internal_key BIGSERIAL PRIMARY KEY,
			client_no VARCHAR(20) NOT NULL,
			base_acct_no VARCHAR(50) NOT NULL UNIQUE,
			acct_name VARCHAR(200),
			acct_ccy VARCHAR(3) NOT NULL DEFAULT 'CNY',
			acct_status VARCHAR(1) NOT NULL DEFAULT 'A',
			acct_branch VARCHAR(20),
			acct_open_date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS rb_acct_balance (
			internal_key BIGINT PRIMARY KEY REFERENCES rb_acct(internal_key),
			client_no VARCHAR(20) NOT NULL,
			total_amount NUMERIC(20,2) NOT NULL DEFAULT 0.00,
			last_change_date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS rb_restraints (
			internal_key BIGINT NOT NULL,
			restraint_type VARCHAR(10) NOT NULL,
			res_seq_no VARCHAR(20) NOT NULL,
			client_no VARCHAR(20),
			real_restraint_amt NUMERIC(20,2) NOT NULL DEFAULT 0.00,
			restraints_status VARCHAR(1) NOT NULL DEFAULT 'A',
			recorded_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
			PRIMARY KEY (internal_key, restraint_type, res_seq_no)
		)`,
		`CREATE TABLE IF NOT EXISTS rb_lm_client_tran_limit (
			base_acct_no VARCHAR(50) NOT NULL,
			limit_ref VARCHAR(50) NOT NULL,
			acct_ccy VARCHAR(3),
			client_no VARCHAR(20),
			limit_min_amt NUMERIC(20,2),
			limit_max_amt NUMERIC(20,2),
			tran_date DATE NOT NULL DEFAULT CURRENT_DATE,
			PRIMARY KEY (base_acct_no, limit_ref)
		)`,
		`CREATE TABLE IF NOT EXISTS rb_tran_hist (
			seq_no VARCHAR(50) PRIMARY KEY,
			internal_key BIGINT NOT NULL,
			client_no VARCHAR(20),
			base_acct_no VARCHAR(50) NOT NULL,
			tran_type VARCHAR(10) NOT NULL,
			tran_amt NUMERIC(20,2) NOT NULL,
			previous_bal_amt NUMERIC(20,2) NOT NULL,
			actual_bal NUMERIC(20,2) NOT NULL,
			cr_dr_ind VARCHAR(1) NOT NULL,
			tran_date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
			reference VARCHAR(50),
			narrative VARCHAR(500),
			tran_status VARCHAR(1) NOT NULL DEFAULT 'N'
		)`,
		`CREATE TABLE IF NOT EXISTS transfer_log (
			id BIGSERIAL PRIMARY KEY,
			transfer_id VARCHAR(50) NOT NULL UNIQUE,
			from_account VARCHAR(50) NOT NULL,
			to_account VARCHAR(50) NOT NULL,
			amount NUMERIC(20,2) NOT NULL,
			currency VARCHAR(3) NOT NULL DEFAULT 'CNY',
			status VARCHAR(10) NOT NULL DEFAULT 'PENDING',
			error_message TEXT,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tran_hist_account_date ON rb_tran_hist(base_acct_no, tran_date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_transfer_log_from ON transfer_log(from_account, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_transfer_log_to ON transfer_log(to_account, created_at DESC)`,
	}

	for _, query := range queries {
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Begin(ctx context.Context) (port_persistence.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin %s transaction: %w", s.name, err)
	}
	return &Tx{tx: tx, name: s.name}, nil
}

const accountBalanceColumns = `
	a.internal_key, a.client_no, a.base_acct_no, COALESCE(a.acct_name, ''),
	a.acct_ccy, a.acct_status, COALESCE(a.acct_branch, ''), a.acct_open_date,
	b.total_amount, b.last_change_date`

const accountBalanceQuery = `
	SELECT` + accountBalanceColumns + `
	FROM rb_acct a
	JOIN rb_acct_balance b ON a.internal_key = b.internal_key
	WHERE a.base_acct_no = $1`

func (s *Store) GetAccountAndBalance(ctx context.Context, accountNo string) (*domain_account.Account, *domain_account.Balance, error) {
	return scanAccountAndBalance(s.db.QueryRowContext(ctx, accountBalanceQuery, accountNo))
}

func (s *Store) GetActiveRestraints(ctx context.Context, internalKey int64) ([]domain_account.Restraint, error) {
	return queryActiveRestraints(ctx, s.db, internalKey)
}

func (s *Store) GetLimits(ctx context.Context, accountNo string) ([]domain_account.TransactionLimit, error) {
	return queryLimits(ctx, s.db, accountNo)
}

func (s *Store) ListHistory(ctx context.Context, accountNo string, limit, offset int) ([]domain_transfer.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq_no, internal_key, COALESCE(client_no, ''), base_acct_no, tran_type,
			tran_amt, previous_bal_amt, actual_bal, cr_dr_ind, tran_date,
			COALESCE(reference, ''), COALESCE(narrative, ''), tran_status
		FROM rb_tran_hist
		WHERE base_acct_no = $1
		ORDER BY tran_date DESC
		LIMIT $2 OFFSET $3`, accountNo, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query %s history: %w", s.name, err)
	}
	defer rows.Close()

	var entries []domain_transfer.HistoryEntry
	for rows.Next() {
		var e domain_transfer.HistoryEntry
		if err := rows.Scan(
			&e.SeqNo, &e.InternalKey, &e.ClientNo, &e.AccountNo, &e.TranType,
			&e.Amount, &e.PreviousBalance, &e.NewBalance, &e.Indicator, &e.Date,
			&e.Reference, &e.Narrative, &e.Status,
		); err != nil {
			return nil, fmt.Errorf("scan %s history row: %w", s.name, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

const transferLogColumns = `
	transfer_id, from_account, to_account, amount, currency, status,
	COALESCE(error_message, ''), created_at, updated_at`

func (s *Store) FindTransferLog(ctx context.Context, transferID string) (*domain_transfer.Log, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT`+transferLogColumns+`
		FROM transfer_log WHERE transfer_id = $1`, transferID)
	return scanTransferLog(row)
}

func (s *Store) ListOutgoingTransfers(ctx context.Context, fromAccount string, limit int) ([]*domain_transfer.Log, error) {
	return s.listTransfers(ctx, "from_account", fromAccount, limit)
}

func (s *Store) ListIncomingTransfers(ctx context.Context, toAccount string, limit int) ([]*domain_transfer.Log, error) {
	return s.listTransfers(ctx, "to_account", toAccount, limit)
}

func (s *Store) listTransfers(ctx context.Context, column, accountNo string, limit int) ([]*domain_transfer.Log, error) {
	// column is one of two fixed identifiers, never caller input.
	query := `SELECT` + transferLogColumns + `
		FROM transfer_log WHERE ` + column + ` = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, accountNo, limit)
	if err != nil {
		return nil, fmt.Errorf("query %s transfer logs: %w", s.name, err)
	}
	defer rows.Close()

	var logs []*domain_transfer.Log
	for rows.Next() {
		log, err := scanTransferLogRow(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

func (s *Store) UpdateTransferLogStatus(ctx context.Context, transferID string, status domain_transfer.Status, errorMessage string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE transfer_log
		SET status = $2, error_message = NULLIF($3, ''), updated_at = now()
		WHERE transfer_id = $1`, transferID, string(status), errorMessage)
	if err != nil {
		return fmt.Errorf("update %s transfer log status: %w", s.name, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
