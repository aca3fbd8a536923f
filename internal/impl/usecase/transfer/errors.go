package impl_transfer

import "fmt"

// ValidationError rejects a structurally invalid request before any store is
// touched.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("transfer: invalid %s: %s", e.Field, e.Message)
}

// TransferError wraps whatever made a transfer attempt fail, keyed by the
// transfer id so the caller can look the attempt up in the ledger.
type TransferError struct {
	TransferID string
	Err        error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer %s failed: %v", e.TransferID, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }
