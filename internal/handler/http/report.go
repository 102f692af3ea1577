package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontohr/ponto-backend-go/internal/domain/report"
	"github.com/pontohr/ponto-backend-go/internal/handler/http/response"
	"github.com/pontohr/ponto-backend-go/internal/pkg/jwt"
)

type ReportHandler interface {
	DownloadMyPDF(w http.ResponseWriter, r *http.Request)
	DownloadPDF(w http.ResponseWriter, r *http.Request)
	DownloadXLSX(w http.ResponseWriter, r *http.Request)
	GetHourBank(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// DownloadMyPDF streams the authenticated user's own report.
func (h *reportHandlerImpl) DownloadMyPDF(w http.ResponseWriter, r *http.Request) {
	actor, err := jwt.ActorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	req := report.MonthlyReportRequest{
		UserID: actor.UserID,
		Month:  r.URL.Query().Get("month"),
	}

	doc, filename, err := h.reportService.GenerateMonthlyPDF(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, filename, "application/pdf", doc)
}

func (h *reportHandlerImpl) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{
		UserID: chi.URLParam(r, "userId"),
		Month:  r.URL.Query().Get("month"),
	}

	doc, filename, err := h.reportService.GenerateMonthlyPDF(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, filename, "application/pdf", doc)
}

func (h *reportHandlerImpl) DownloadXLSX(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{
		UserID: chi.URLParam(r, "userId"),
		Month:  r.URL.Query().Get("month"),
	}

	doc, filename, err := h.reportService.GenerateMonthlyXLSX(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", doc)
}

func (h *reportHandlerImpl) GetHourBank(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{
		UserID: chi.URLParam(r, "userId"),
		Month:  r.URL.Query().Get("month"),
	}

	result, err := h.reportService.GetHourBank(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
