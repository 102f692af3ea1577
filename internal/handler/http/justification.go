package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontohr/ponto-backend-go/internal/domain/justification"
	"github.com/pontohr/ponto-backend-go/internal/handler/http/response"
)

type JustificationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ManagerCreate(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type justificationHandlerImpl struct {
	justificationService justification.JustificationService
}

func NewJustificationHandler(justificationService justification.JustificationService) JustificationHandler {
	return &justificationHandlerImpl{justificationService: justificationService}
}

func (h *justificationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req justification.CreateJustificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.justificationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Justification submitted", result)
}

func (h *justificationHandlerImpl) ManagerCreate(w http.ResponseWriter, r *http.Request) {
	var req justification.ManagerCreateJustificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.justificationService.ManagerCreate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Justification created and approved", result)
}

func (h *justificationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	results, err := h.justificationService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *justificationHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	results, err := h.justificationService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *justificationHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req justification.DecideJustificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.justificationService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Justification decided", result)
}
