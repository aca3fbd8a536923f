package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	domain_account "github.com/james-ap-sunny/interbank-transfers/internal/domain/account"
	domain_transfer "github.com/james-ap-sunny/interbank-transfers/internal/domain/transfer"
	impl_coordinator "github.com/james-ap-sunny/interbank-transfers/internal/impl/coordinator"
	impl_transfer "github.com/james-ap-sunny/interbank-transfers/internal/impl/usecase/transfer"
	port_persistence "github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/persistence"
)

type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, errorEnvelope{Error: body})
}

// classify maps an error to an HTTP status and a stable machine-readable
// code. Business-rule rejections are 422; malformed requests are 400.
func classify(err error) (int, errorBody) {
	var transferErr *impl_transfer.TransferError
	if errors.As(err, &transferErr) {
		status, body := classify(transferErr.Err)
		if body.Details == nil {
			body.Details = map[string]string{}
		}
		body.Details["transfer_id"] = transferErr.TransferID
		return status, body
	}

	var validationErr *impl_transfer.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, errorBody{
			Code:    "VALIDATION_ERROR",
			Message: validationErr.Message,
			Details: map[string]string{"field": validationErr.Field},
		}
	}

	var notFound *domain_account.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound, errorBody{
			Code:    "ACCOUNT_NOT_FOUND",
			Message: err.Error(),
			Details: map[string]string{"account": notFound.AccountNo},
		}
	}
	if errors.Is(err, port_persistence.ErrNotFound) {
		return http.StatusNotFound, errorBody{Code: "NOT_FOUND", Message: "resource not found"}
	}

	var inactive *domain_account.InactiveError
	if errors.As(err, &inactive) {
		return http.StatusUnprocessableEntity, errorBody{
			Code:    "ACCOUNT_INACTIVE",
			Message: err.Error(),
			Details: map[string]string{"account": inactive.AccountNo},
		}
	}

	var restricted *domain_account.RestrictedError
	if errors.As(err, &restricted) {
		return http.StatusUnprocessableEntity, errorBody{
			Code:    "ACCOUNT_RESTRICTED",
			Message: err.Error(),
			Details: map[string]string{"account": restricted.AccountNo},
		}
	}

	var insufficient *domain_account.InsufficientBalanceError
	if errors.As(err, &insufficient) {
		return http.StatusUnprocessableEntity, errorBody{
			Code:    "INSUFFICIENT_BALANCE",
			Message: err.Error(),
			Details: map[string]string{
				"account":   insufficient.AccountNo,
				"available": insufficient.Available.StringFixed(2),
				"requested": insufficient.Requested.StringFixed(2),
			},
		}
	}

	var limit *domain_account.TransferLimitExceededError
	if errors.As(err, &limit) {
		return http.StatusUnprocessableEntity, errorBody{
			Code:    "TRANSFER_LIMIT_EXCEEDED",
			Message: err.Error(),
			Details: map[string]string{
				"limit":     limit.LimitAmount.StringFixed(2),
				"requested": limit.Requested.StringFixed(2),
			},
		}
	}

	var mismatch *domain_transfer.CurrencyMismatchError
	if errors.As(err, &mismatch) {
		return http.StatusUnprocessableEntity, errorBody{Code: "CURRENCY_MISMATCH", Message: err.Error()}
	}

	var unsupported *domain_transfer.UnsupportedCurrencyError
	if errors.As(err, &unsupported) {
		return http.StatusUnprocessableEntity, errorBody{
			Code:    "UNSUPPORTED_CURRENCY",
			Message: err.Error(),
			Details: map[string]string{"currency": unsupported.Currency},
		}
	}

	switch {
	case errors.Is(err, domain_transfer.ErrSameAccount),
		errors.Is(err, domain_transfer.ErrMissingAccount),
		errors.Is(err, domain_transfer.ErrInvalidAmount),
		errors.Is(err, domain_transfer.ErrInvalidCurrency):
		return http.StatusBadRequest, errorBody{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	var commitErr *impl_coordinator.CommitError
	if errors.As(err, &commitErr) && commitErr.SourceCommitted {
		// The stores diverged. This must surface loudly, never as a retryable
		// failure.
		return http.StatusInternalServerError, errorBody{
			Code:    "RECONCILIATION_REQUIRED",
			Message: "transfer failed in an inconsistent state; manual reconciliation required",
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, errorBody{Code: "TRANSFER_TIMEOUT", Message: "transfer timed out"}
	}

	return http.StatusInternalServerError, errorBody{Code: "INTERNAL_ERROR", Message: "internal error"}
}
