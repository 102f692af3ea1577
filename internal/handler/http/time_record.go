package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontohr/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontohr/ponto-backend-go/internal/handler/http/response"
	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
)

type TimeRecordHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListForDate(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
}

type timeRecordHandlerImpl struct {
	timeRecordService timerecord.TimeRecordService
}

func NewTimeRecordHandler(timeRecordService timerecord.TimeRecordService) TimeRecordHandler {
	return &timeRecordHandlerImpl{timeRecordService: timeRecordService}
}

func (h *timeRecordHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeRecordService.Punch(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch registered", result)
}

func (h *timeRecordHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeRecordService.GetToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timeRecordHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	var filter timerecord.ListTimeRecordsFilter
	if month := r.URL.Query().Get("month"); month != "" {
		filter.Month = &month
	}

	results, err := h.timeRecordService.ListMine(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *timeRecordHandlerImpl) ListForDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if _, valid := validator.IsValidDate(date); !valid {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	results, err := h.timeRecordService.ListForDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *timeRecordHandlerImpl) Adjust(w http.ResponseWriter, r *http.Request) {
	var req timerecord.AdjustTimeRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.timeRecordService.Adjust(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time record adjusted", result)
}
