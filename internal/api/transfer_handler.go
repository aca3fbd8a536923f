package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domain_transfer "github.com/james-ap-sunny/interbank-transfers/internal/domain/transfer"
	impl_transfer "github.com/james-ap-sunny/interbank-transfers/internal/impl/usecase/transfer"
	port_transfer "github.com/james-ap-sunny/interbank-transfers/internal/ports/usecase/transfer"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type TransferHandler struct {
	transfers port_transfer.TransferUseCase
	log       *zap.Logger
}

func NewTransferHandler(transfers port_transfer.TransferUseCase, log *zap.Logger) *TransferHandler {
	return &TransferHandler{transfers: transfers, log: log}
}

// transferRequest carries monetary amounts as strings to avoid float
// rounding on the wire.
type transferRequest struct {
	FromAccount string `json:"from_account"`
	ToAccount   string `json:"to_account"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description,omitempty"`
}

type transferResponse struct {
	TransferID       string `json:"transfer_id"`
	FromAccount      string `json:"from_account"`
	ToAccount        string `json:"to_account"`
	Amount           string `json:"amount"`
	Currency         string `json:"currency"`
	Status           string `json:"status"`
	SourceNewBalance string `json:"source_new_balance"`
	DestNewBalance   string `json:"dest_new_balance"`
	CompletedAt      string `json:"completed_at"`
}

type transferLogResponse struct {
	TransferID   string `json:"transfer_id"`
	FromAccount  string `json:"from_account"`
	ToAccount    string `json:"to_account"`
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := h.decode(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	out, err := h.transfers.Process(r.Context(), in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, transferResponse{
		TransferID:       out.TransferID,
		FromAccount:      out.FromAccount,
		ToAccount:        out.ToAccount,
		Amount:           out.Amount.StringFixed(2),
		Currency:         out.Currency,
		Status:           string(out.Status),
		SourceNewBalance: out.SourceNewBalance.StringFixed(2),
		DestNewBalance:   out.DestNewBalance.StringFixed(2),
		CompletedAt:      out.CompletedAt.UTC().Format(time.RFC3339),
	})
}

func (h *TransferHandler) Validate(w http.ResponseWriter, r *http.Request) {
	in, err := h.decode(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	if err := h.transfers.Validate(in); err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"valid": true})
}

func (h *TransferHandler) Status(w http.ResponseWriter, r *http.Request) {
	transferID := chi.URLParam(r, "transferID")

	log, err := h.transfers.Status(r.Context(), transferID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponse(log))
}

func (h *TransferHandler) History(w http.ResponseWriter, r *http.Request) {
	accountNo := chi.URLParam(r, "accountNo")
	limit, offset := pagination(r)

	logs, err := h.transfers.History(r.Context(), accountNo, limit, offset)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	out := make([]transferLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, toLogResponse(l))
	}
	writeJSON(w, http.StatusOK, map[string]any{"account": accountNo, "transfers": out})
}

func (h *TransferHandler) decode(r *http.Request) (port_transfer.ProcessTransferInput, error) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return port_transfer.ProcessTransferInput{}, &impl_transfer.ValidationError{
			Field: "body", Message: "invalid JSON body",
		}
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return port_transfer.ProcessTransferInput{}, &impl_transfer.ValidationError{
			Field: "amount", Message: "amount must be a decimal string",
		}
	}

	return port_transfer.ProcessTransferInput{
		FromAccount: req.FromAccount,
		ToAccount:   req.ToAccount,
		Amount:      amount,
		Currency:    req.Currency,
		Description: req.Description,
	}, nil
}

func toLogResponse(l *domain_transfer.Log) transferLogResponse {
	return transferLogResponse{
		TransferID:   l.TransferID(),
		FromAccount:  l.FromAccount(),
		ToAccount:    l.ToAccount(),
		Amount:       l.Amount().StringFixed(2),
		Currency:     l.Currency(),
		Status:       string(l.Status()),
		ErrorMessage: l.ErrorMessage(),
		CreatedAt:    l.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:    l.UpdatedAt().UTC().Format(time.RFC3339),
	}
}

func pagination(r *http.Request) (limit, offset int) {
	limit = defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = min(n, maxHistoryLimit)
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = n
		}
	}
	return limit, offset
}
