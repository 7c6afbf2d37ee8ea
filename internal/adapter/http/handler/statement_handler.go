package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/bizledger/internal/adapter/http/dto"
	"github.com/iho/bizledger/internal/usecase"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	GetStatement(ctx context.Context, customerID string) (*usecase.StatementOutput, error)
	GetBalance(ctx context.Context, customerID string) (decimal.Decimal, error)
	ListBalances(ctx context.Context) ([]*usecase.CustomerBalance, error)
}

// StatementHandler handles statement and balance HTTP requests.
type StatementHandler struct {
	statementUC StatementService
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUC StatementService) *StatementHandler {
	return &StatementHandler{statementUC: statementUC}
}

// Get returns the full statement for a customer.
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing customer ID", "")
		return
	}

	output, err := h.statementUC.GetStatement(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get statement", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromOutput(output))
}

// Balance returns the current balance for a customer.
func (h *StatementHandler) Balance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing customer ID", "")
		return
	}

	balance, err := h.statementUC.GetBalance(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get balance", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		CustomerID: id,
		Balance:    balance,
		IsDebtor:   balance.IsPositive(),
	})
}

// ListBalances returns the balance of every customer.
func (h *StatementHandler) ListBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.statementUC.ListBalances(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list balances", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListBalancesResponse{
		Balances: dto.BalancesFromOutput(balances),
	})
}
