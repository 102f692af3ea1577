package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/pontohr/ponto-backend-go/internal/service/hourbank"
)

var monthNamesPT = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

func referenceMonthLabel(month string) string {
	ref, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return fmt.Sprintf("%s %d", monthNamesPT[ref.Month()-1], ref.Year())
}

func formatDateBR(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("02/01/2006")
}

// renderPDF lays out the attendance report: header, one table row per day of
// the period, the period summary and the signature lines.
func renderPDF(data reportData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Relatório de Ponto"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	headerY := pdf.GetY()
	pdf.CellFormat(95, 5, tr("Funcionário: "+data.User.Name), "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 5, "CPF: "+data.User.CPF, "", 1, "L", false, 0, "")

	pdf.SetY(headerY)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, tr("Mês de Referência: "+referenceMonthLabel(data.Month)), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Período: %s a %s", formatDateBR(data.PeriodStart), formatDateBR(data.PeriodEnd))), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "BU", 12)
	pdf.CellFormat(0, 7, tr("Registros Diários"), "", 1, "C", false, 0, "")
	pdf.Ln(1)

	const dateWidth = 28.0
	const cellWidth = 27.0

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(dateWidth, 6, "Data", "B", 0, "L", false, 0, "")
	pdf.CellFormat(cellWidth, 6, "Entrada 1", "B", 0, "C", false, 0, "")
	pdf.CellFormat(cellWidth, 6, tr("Saída 1"), "B", 0, "C", false, 0, "")
	pdf.CellFormat(cellWidth, 6, "Entrada 2", "B", 0, "C", false, 0, "")
	pdf.CellFormat(cellWidth, 6, tr("Saída 2"), "B", 0, "C", false, 0, "")
	pdf.CellFormat(cellWidth, 6, "Total Horas", "B", 1, "R", false, 0, "")

	for _, row := range data.Rows {
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(dateWidth, 5, row.Date.Format("02/01/2006"), "", 0, "L", false, 0, "")

		switch row.Kind {
		case RowRecord:
			record := row.Record
			if record.IsAdjusted {
				pdf.SetFont("Helvetica", "U", 8)
			}
			total := 0.0
			if record.TotalHours != nil {
				total = *record.TotalHours
			}
			pdf.CellFormat(cellWidth, 5, clockOrPlaceholder(record.Entry1), "", 0, "C", false, 0, "")
			pdf.CellFormat(cellWidth, 5, clockOrPlaceholder(record.Exit1), "", 0, "C", false, 0, "")
			pdf.CellFormat(cellWidth, 5, clockOrPlaceholder(record.Entry2), "", 0, "C", false, 0, "")
			pdf.CellFormat(cellWidth, 5, clockOrPlaceholder(record.Exit2), "", 0, "C", false, 0, "")
			pdf.CellFormat(cellWidth, 5, hourbank.DecimalToHHMM(total), "", 1, "R", false, 0, "")

		case RowJustification:
			if row.IsHolidayRow() {
				pdf.SetTextColor(200, 0, 0)
			} else {
				pdf.SetTextColor(0, 0, 200)
			}
			pdf.CellFormat(cellWidth*5, 5, tr(JustificationLabel(*row.Justification)), "", 1, "C", false, 0, "")

		case RowWeekend:
			pdf.SetTextColor(128, 128, 128)
			pdf.CellFormat(cellWidth*5, 5, "Final de Semana", "", 1, "C", false, 0, "")

		default:
			pdf.SetTextColor(128, 128, 128)
			pdf.CellFormat(cellWidth*5, 5, "Sem registro", "", 1, "C", false, 0, "")
		}
	}

	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
	pdf.SetDrawColor(204, 204, 204)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, tr("Resumo do Período"), "", 1, "L", false, 0, "")

	summaryY := pdf.GetY()
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(95, 5, "Horas esperadas: "+hourbank.DecimalToHHMM(data.Summary.ExpectedHours), "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 5, "Horas trabalhadas: "+hourbank.DecimalToHHMM(data.Summary.WorkedHours), "", 1, "L", false, 0, "")

	pdf.SetY(summaryY)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, tr("Saldo do período: "+hourbank.DecimalToHHMM(data.Summary.Balance)), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Total de justificativas aprovadas: %d", data.Approved)), "", 1, "R", false, 0, "")

	pdf.Ln(14)
	signatureY := pdf.GetY()
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(95, 5, "__________________________________", "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 5, tr(data.User.Name), "", 1, "L", false, 0, "")

	pdf.SetY(signatureY)
	pdf.CellFormat(0, 5, "__________________________________", "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 5, "Assinatura do Gestor", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
