package report

import "context"

type ReportService interface {
	// GenerateMonthlyPDF renders the attendance report for one user and one
	// reference month as a PDF document.
	GenerateMonthlyPDF(ctx context.Context, req MonthlyReportRequest) ([]byte, string, error)

	// GenerateMonthlyXLSX renders the same report as a spreadsheet.
	GenerateMonthlyXLSX(ctx context.Context, req MonthlyReportRequest) ([]byte, string, error)

	// GetHourBank returns the period balance without rendering a document.
	GetHourBank(ctx context.Context, req MonthlyReportRequest) (HourBankResponse, error)
}
