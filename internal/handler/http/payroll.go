package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/autodazzle/detailing-backend-go/internal/domain/payroll"
	"github.com/autodazzle/detailing-backend-go/internal/handler/http/response"
	"github.com/autodazzle/detailing-backend-go/internal/service/payslip"
)

type PayrollHandler interface {
	GetMonth(w http.ResponseWriter, r *http.Request)
	UpsertDeduction(w http.ResponseWriter, r *http.Request)
	ListDeductions(w http.ResponseWriter, r *http.Request)
	Finalize(w http.ResponseWriter, r *http.Request)
	ListRuns(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
	payslipService *payslip.Service
}

func NewPayrollHandler(payrollService payroll.PayrollService, payslipService *payslip.Service) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
		payslipService: payslipService,
	}
}

func (h *payrollHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")

	result, err := h.payrollService.GetMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpsertDeduction(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpsertDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.Month = chi.URLParam(r, "month")
	req.StaffID = chi.URLParam(r, "staffID")

	result, err := h.payrollService.UpsertDeduction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListDeductions(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")

	result, err := h.payrollService.ListDeductions(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) Finalize(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")

	result, err := h.payrollService.Finalize(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll finalized", result)
}

func (h *payrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListRuns(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	staffID := chi.URLParam(r, "staffID")

	filePath, err := h.payslipService.Render(r.Context(), month, staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, filePath)
}
