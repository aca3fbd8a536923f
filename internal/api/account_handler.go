package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	port_accounts "github.com/james-ap-sunny/interbank-transfers/internal/ports/usecase/account"
)

type AccountHandler struct {
	accounts port_accounts.AccountReader
	log      *zap.Logger
}

func NewAccountHandler(accounts port_accounts.AccountReader, log *zap.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, log: log}
}

type accountResponse struct {
	AccountNo  string              `json:"account_no"`
	ClientNo   string              `json:"client_no"`
	Name       string              `json:"name"`
	Currency   string              `json:"currency"`
	Status     string              `json:"status"`
	Branch     string              `json:"branch,omitempty"`
	Balance    string              `json:"balance"`
	Restraints []restraintResponse `json:"restraints,omitempty"`
	Limits     []limitResponse     `json:"limits,omitempty"`
}

type restraintResponse struct {
	Type   string `json:"type"`
	Amount string `json:"amount"`
	Status string `json:"status"`
}

type limitResponse struct {
	Ref string `json:"ref"`
	Min string `json:"min,omitempty"`
	Max string `json:"max,omitempty"`
}

type historyEntryResponse struct {
	SeqNo           string `json:"seq_no"`
	AccountNo       string `json:"account_no"`
	TranType        string `json:"tran_type"`
	Amount          string `json:"amount"`
	PreviousBalance string `json:"previous_balance"`
	NewBalance      string `json:"new_balance"`
	Indicator       string `json:"indicator"`
	Date            string `json:"date"`
	Reference       string `json:"reference"`
	Narrative       string `json:"narrative,omitempty"`
}

func (h *AccountHandler) Info(w http.ResponseWriter, r *http.Request) {
	accountNo := chi.URLParam(r, "accountNo")

	info, err := h.accounts.Info(r.Context(), accountNo)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	resp := accountResponse{
		AccountNo: info.Account.AccountNo,
		ClientNo:  info.Account.ClientNo,
		Name:      info.Account.Name,
		Currency:  info.Account.Currency,
		Status:    info.Account.Status,
		Branch:    info.Account.Branch,
		Balance:   info.Balance.Amount.StringFixed(2),
	}
	for _, rs := range info.Restraints {
		resp.Restraints = append(resp.Restraints, restraintResponse{
			Type:   rs.Type,
			Amount: rs.Amount.StringFixed(2),
			Status: rs.Status,
		})
	}
	for _, l := range info.Limits {
		lr := limitResponse{Ref: l.Ref}
		if l.MinAmount.Valid {
			lr.Min = l.MinAmount.Decimal.StringFixed(2)
		}
		if l.MaxAmount.Valid {
			lr.Max = l.MaxAmount.Decimal.StringFixed(2)
		}
		resp.Limits = append(resp.Limits, lr)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *AccountHandler) History(w http.ResponseWriter, r *http.Request) {
	accountNo := chi.URLParam(r, "accountNo")
	limit, offset := pagination(r)

	entries, err := h.accounts.History(r.Context(), accountNo, limit, offset)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	out := make([]historyEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyEntryResponse{
			SeqNo:           e.SeqNo,
			AccountNo:       e.AccountNo,
			TranType:        e.TranType,
			Amount:          e.Amount.StringFixed(2),
			PreviousBalance: e.PreviousBalance.StringFixed(2),
			NewBalance:      e.NewBalance.StringFixed(2),
			Indicator:       e.Indicator,
			Date:            e.Date.UTC().Format(time.RFC3339),
			Reference:       e.Reference,
			Narrative:       e.Narrative,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"account": accountNo, "entries": out})
}
