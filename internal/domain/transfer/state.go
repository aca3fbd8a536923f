package domain_transfer

// Status is the lifecycle status of one transfer attempt, as recorded in the
// per-store ledger row. A transfer is created PENDING and moves to exactly one
// terminal status.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusSuccess  Status = "SUCCESS"
	StatusFailed   Status = "FAILED"
	StatusRollback Status = "ROLLBACK"
)

func (s Status) IsFinal() bool {
	return s == StatusSuccess || s == StatusFailed || s == StatusRollback
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSuccess, StatusFailed, StatusRollback:
		return true
	}
	return false
}
