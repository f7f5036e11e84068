package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/autodazzle/detailing-backend-go/internal/domain/finance"
	"github.com/autodazzle/detailing-backend-go/internal/handler/http/response"
)

type FinanceHandler interface {
	RecordTransaction(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
}

type financeHandlerImpl struct {
	financeService finance.FinanceService
}

func NewFinanceHandler(financeService finance.FinanceService) FinanceHandler {
	return &financeHandlerImpl{financeService: financeService}
}

func (h *financeHandlerImpl) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	var req finance.RecordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.financeService.RecordTransaction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Transaction recorded", result)
}

func (h *financeHandlerImpl) ListTransactions(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = finance.CategoryLaborExpense
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.financeService.ListByCategory(r.Context(), category, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
