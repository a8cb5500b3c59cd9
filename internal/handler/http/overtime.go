package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/worktrail-hq/attendance-backend-go/internal/domain/overtime"
	"github.com/worktrail-hq/attendance-backend-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	SeniorDecide(w http.ResponseWriter, r *http.Request)
	SeniorReject(w http.ResponseWriter, r *http.Request)
	AdminDecide(w http.ResponseWriter, r *http.Request)
	AdminReject(w http.ResponseWriter, r *http.Request)
	MonthlyTotals(w http.ResponseWriter, r *http.Request)
	UserMonthlyTotal(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	otService overtime.OTService
}

func NewOvertimeHandler(otService overtime.OTService) OvertimeHandler {
	return &overtimeHandlerImpl{
		otService: otService,
	}
}

// Create implements OvertimeHandler.
func (h *overtimeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req overtime.CreateOTRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.otService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request submitted", result)
}

// ListMine implements OvertimeHandler.
func (h *overtimeHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	results, err := h.otService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListAll implements OvertimeHandler.
func (h *overtimeHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	results, err := h.otService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// SeniorDecide implements OvertimeHandler.
func (h *overtimeHandlerImpl) SeniorDecide(w http.ResponseWriter, r *http.Request) {
	var req overtime.SeniorDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.otService.SeniorDecide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request updated", result)
}

// SeniorReject implements OvertimeHandler.
func (h *overtimeHandlerImpl) SeniorReject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req overtime.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.otService.SeniorReject(r.Context(), id, req.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request rejected", result)
}

// AdminDecide implements OvertimeHandler.
func (h *overtimeHandlerImpl) AdminDecide(w http.ResponseWriter, r *http.Request) {
	var req overtime.AdminDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.otService.AdminDecide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request updated", result)
}

// AdminReject implements OvertimeHandler.
func (h *overtimeHandlerImpl) AdminReject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req overtime.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.otService.AdminReject(r.Context(), id, req.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request rejected", result)
}

func parseMonthFilter(r *http.Request) overtime.MonthFilter {
	filter := overtime.MonthFilter{}

	if m := r.URL.Query().Get("month"); m != "" {
		if month, err := strconv.Atoi(m); err == nil {
			filter.Month = month
		}
	}
	if y := r.URL.Query().Get("year"); y != "" {
		if year, err := strconv.Atoi(y); err == nil {
			filter.Year = year
		}
	}

	return filter
}

// MonthlyTotals implements OvertimeHandler.
func (h *overtimeHandlerImpl) MonthlyTotals(w http.ResponseWriter, r *http.Request) {
	results, err := h.otService.MonthlyTotals(r.Context(), parseMonthFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UserMonthlyTotal implements OvertimeHandler.
func (h *overtimeHandlerImpl) UserMonthlyTotal(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	result, err := h.otService.UserMonthlyTotal(r.Context(), userID, parseMonthFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
