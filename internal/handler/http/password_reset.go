package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontohr/ponto-backend-go/internal/domain/passwordreset"
	"github.com/pontohr/ponto-backend-go/internal/handler/http/response"
)

type PasswordResetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type passwordResetHandlerImpl struct {
	passwordResetService passwordreset.PasswordResetService
}

func NewPasswordResetHandler(passwordResetService passwordreset.PasswordResetService) PasswordResetHandler {
	return &passwordResetHandlerImpl{passwordResetService: passwordResetService}
}

func (h *passwordResetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req passwordreset.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.passwordResetService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Password reset requested", result)
}

func (h *passwordResetHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	results, err := h.passwordResetService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *passwordResetHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	var req passwordreset.ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.passwordResetService.Resolve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password reset resolved", result)
}
