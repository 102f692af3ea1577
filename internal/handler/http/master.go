package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontohr/ponto-backend-go/internal/domain/master"
	"github.com/pontohr/ponto-backend-go/internal/domain/master/department"
	"github.com/pontohr/ponto-backend-go/internal/domain/master/employmenttype"
	"github.com/pontohr/ponto-backend-go/internal/domain/master/function"
	"github.com/pontohr/ponto-backend-go/internal/domain/master/justificationtype"
	"github.com/pontohr/ponto-backend-go/internal/handler/http/response"
)

type MasterHandler interface {
	// Department handlers
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	ToggleDepartment(w http.ResponseWriter, r *http.Request)

	// Function handlers
	CreateFunction(w http.ResponseWriter, r *http.Request)
	ListFunctions(w http.ResponseWriter, r *http.Request)
	UpdateFunction(w http.ResponseWriter, r *http.Request)
	ToggleFunction(w http.ResponseWriter, r *http.Request)

	// Employment type handlers
	CreateEmploymentType(w http.ResponseWriter, r *http.Request)
	ListEmploymentTypes(w http.ResponseWriter, r *http.Request)
	UpdateEmploymentType(w http.ResponseWriter, r *http.Request)
	ToggleEmploymentType(w http.ResponseWriter, r *http.Request)

	// Justification type handlers
	CreateJustificationType(w http.ResponseWriter, r *http.Request)
	ListJustificationTypes(w http.ResponseWriter, r *http.Request)
	UpdateJustificationType(w http.ResponseWriter, r *http.Request)
	ToggleJustificationType(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

func includeInactive(r *http.Request) bool {
	return r.URL.Query().Get("include_inactive") == "true"
}

type toggleRequest struct {
	Active bool `json:"active"`
}

// ==================== DEPARTMENT HANDLERS ====================

func (h *masterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created successfully", result)
}

func (h *masterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListDepartments(r.Context(), includeInactive(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.masterService.UpdateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated successfully", result)
}

func (h *masterHandlerImpl) ToggleDepartment(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.ToggleDepartment(r.Context(), chi.URLParam(r, "id"), req.Active)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department status updated", result)
}

// ==================== FUNCTION HANDLERS ====================

func (h *masterHandlerImpl) CreateFunction(w http.ResponseWriter, r *http.Request) {
	var req function.CreateFunctionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateFunction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Function created successfully", result)
}

func (h *masterHandlerImpl) ListFunctions(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListFunctions(r.Context(), includeInactive(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateFunction(w http.ResponseWriter, r *http.Request) {
	var req function.UpdateFunctionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.masterService.UpdateFunction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Function updated successfully", result)
}

func (h *masterHandlerImpl) ToggleFunction(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.ToggleFunction(r.Context(), chi.URLParam(r, "id"), req.Active)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Function status updated", result)
}

// ==================== EMPLOYMENT TYPE HANDLERS ====================

func (h *masterHandlerImpl) CreateEmploymentType(w http.ResponseWriter, r *http.Request) {
	var req employmenttype.CreateEmploymentTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateEmploymentType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employment type created successfully", result)
}

func (h *masterHandlerImpl) ListEmploymentTypes(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListEmploymentTypes(r.Context(), includeInactive(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateEmploymentType(w http.ResponseWriter, r *http.Request) {
	var req employmenttype.UpdateEmploymentTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.masterService.UpdateEmploymentType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employment type updated successfully", result)
}

func (h *masterHandlerImpl) ToggleEmploymentType(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.ToggleEmploymentType(r.Context(), chi.URLParam(r, "id"), req.Active)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employment type status updated", result)
}

// ==================== JUSTIFICATION TYPE HANDLERS ====================

func (h *masterHandlerImpl) CreateJustificationType(w http.ResponseWriter, r *http.Request) {
	var req justificationtype.CreateJustificationTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateJustificationType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Justification type created successfully", result)
}

func (h *masterHandlerImpl) ListJustificationTypes(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListJustificationTypes(r.Context(), includeInactive(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateJustificationType(w http.ResponseWriter, r *http.Request) {
	var req justificationtype.UpdateJustificationTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.masterService.UpdateJustificationType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Justification type updated successfully", result)
}

func (h *masterHandlerImpl) ToggleJustificationType(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.ToggleJustificationType(r.Context(), chi.URLParam(r, "id"), req.Active)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Justification type status updated", result)
}
