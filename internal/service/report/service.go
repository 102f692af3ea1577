package report

import (
	"context"
	"fmt"
	"time"

	"github.com/pontohr/ponto-backend-go/internal/domain/justification"
	"github.com/pontohr/ponto-backend-go/internal/domain/report"
	"github.com/pontohr/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontohr/ponto-backend-go/internal/domain/user"
	"github.com/pontohr/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontohr/ponto-backend-go/internal/service/hourbank"
)

type ReportServiceImpl struct {
	userRepo          user.UserRepository
	recordRepo        timerecord.TimeRecordRepository
	justificationRepo justification.JustificationRepository
}

func NewReportService(
	userRepo user.UserRepository,
	recordRepo timerecord.TimeRecordRepository,
	justificationRepo justification.JustificationRepository,
) report.ReportService {
	return &ReportServiceImpl{
		userRepo:          userRepo,
		recordRepo:        recordRepo,
		justificationRepo: justificationRepo,
	}
}

// Period maps a reference month (YYYY-MM) to the payroll window it reports
// on: the 21st of the previous month through the 20th of the reference
// month, both inclusive.
func Period(month string) (string, string, error) {
	ref, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", fmt.Errorf("parse month %q: %w", month, err)
	}

	end := time.Date(ref.Year(), ref.Month(), 20, 12, 0, 0, 0, time.UTC)
	start := end.AddDate(0, -1, 1)

	return start.Format("2006-01-02"), end.Format("2006-01-02"), nil
}

// reportData is everything the renderers need for one report.
type reportData struct {
	User        user.User
	Month       string
	PeriodStart string
	PeriodEnd   string
	Rows        []DayRow
	Summary     hourbank.Summary
	Approved    int
}

func (s *ReportServiceImpl) buildReport(ctx context.Context, req report.MonthlyReportRequest) (reportData, error) {
	if err := req.Validate(); err != nil {
		return reportData{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return reportData{}, err
	}

	u, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return reportData{}, err
	}

	if actor.UserID != req.UserID {
		if !actor.IsManager() {
			return reportData{}, user.ErrAdminPrivilegeRequired
		}
		if !actor.IsAdmin() && actor.DepartmentID == nil {
			return reportData{}, user.ErrNoDepartment
		}
		if scope := actor.Scope(); scope != nil {
			if u.DepartmentID == nil || *u.DepartmentID != *scope {
				return reportData{}, user.ErrAdminPrivilegeRequired
			}
		}
	}

	periodStart, periodEnd, err := Period(req.Month)
	if err != nil {
		return reportData{}, err
	}

	records, err := s.recordRepo.ListForUser(ctx, req.UserID, periodStart, periodEnd)
	if err != nil {
		return reportData{}, fmt.Errorf("failed to list time records: %w", err)
	}

	approved, err := s.justificationRepo.ListForUserByDateRange(ctx, req.UserID, periodStart, periodEnd, true)
	if err != nil {
		return reportData{}, fmt.Errorf("failed to list justifications: %w", err)
	}

	summary, err := hourbank.Compute(u.DailyWorkHours, records, approved, periodStart, periodEnd)
	if err != nil {
		return reportData{}, err
	}

	startDay, err := hourbank.ParseDay(periodStart)
	if err != nil {
		return reportData{}, err
	}
	endDay, err := hourbank.ParseDay(periodEnd)
	if err != nil {
		return reportData{}, err
	}

	return reportData{
		User:        u,
		Month:       req.Month,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Rows:        BuildDailyRows(startDay, endDay, records, approved),
		Summary:     summary,
		Approved:    len(approved),
	}, nil
}

func (s *ReportServiceImpl) GenerateMonthlyPDF(ctx context.Context, req report.MonthlyReportRequest) ([]byte, string, error) {
	data, err := s.buildReport(ctx, req)
	if err != nil {
		return nil, "", err
	}

	doc, err := renderPDF(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render pdf: %w", err)
	}

	return doc, fmt.Sprintf("relatorio-ponto-%s-%s.pdf", data.User.Username, data.Month), nil
}

func (s *ReportServiceImpl) GenerateMonthlyXLSX(ctx context.Context, req report.MonthlyReportRequest) ([]byte, string, error) {
	data, err := s.buildReport(ctx, req)
	if err != nil {
		return nil, "", err
	}

	doc, err := renderXLSX(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render spreadsheet: %w", err)
	}

	return doc, fmt.Sprintf("relatorio-ponto-%s-%s.xlsx", data.User.Username, data.Month), nil
}

func (s *ReportServiceImpl) GetHourBank(ctx context.Context, req report.MonthlyReportRequest) (report.HourBankResponse, error) {
	data, err := s.buildReport(ctx, req)
	if err != nil {
		return report.HourBankResponse{}, err
	}

	return report.HourBankResponse{
		PeriodStart:            data.PeriodStart,
		PeriodEnd:              data.PeriodEnd,
		ExpectedHours:          data.Summary.ExpectedHours,
		WorkedHours:            data.Summary.WorkedHours,
		Balance:                data.Summary.Balance,
		ExpectedHoursFormatted: hourbank.DecimalToHHMM(data.Summary.ExpectedHours),
		WorkedHoursFormatted:   hourbank.DecimalToHHMM(data.Summary.WorkedHours),
		BalanceFormatted:       hourbank.DecimalToHHMM(data.Summary.Balance),
		ApprovedJustifications: data.Approved,
	}, nil
}
