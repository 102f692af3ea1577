package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pontohr/ponto-backend-go/internal/service/hourbank"
)

// renderXLSX writes the attendance report as a single-sheet spreadsheet with
// the same row resolution the PDF uses.
func renderXLSX(data reportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Relatório de Ponto"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheetName, "A1", "Funcionário")
	f.SetCellValue(sheetName, "B1", data.User.Name)
	f.SetCellValue(sheetName, "A2", "CPF")
	f.SetCellValue(sheetName, "B2", data.User.CPF)
	f.SetCellValue(sheetName, "A3", "Mês de Referência")
	f.SetCellValue(sheetName, "B3", referenceMonthLabel(data.Month))
	f.SetCellValue(sheetName, "A4", "Período")
	f.SetCellValue(sheetName, "B4", fmt.Sprintf("%s a %s", formatDateBR(data.PeriodStart), formatDateBR(data.PeriodEnd)))

	headers := []string{"Data", "Entrada 1", "Saída 1", "Entrada 2", "Saída 2", "Total Horas", "Observação"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 6)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheetName, cell, h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	f.SetCellStyle(sheetName, "A6", "G6", headerStyle)

	for idx, dayRow := range data.Rows {
		row := idx + 7
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), dayRow.Date.Format("02/01/2006"))

		switch dayRow.Kind {
		case RowRecord:
			record := dayRow.Record
			total := 0.0
			if record.TotalHours != nil {
				total = *record.TotalHours
			}
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), clockOrPlaceholder(record.Entry1))
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), clockOrPlaceholder(record.Exit1))
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), clockOrPlaceholder(record.Entry2))
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), clockOrPlaceholder(record.Exit2))
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), hourbank.DecimalToHHMM(total))
			if record.IsAdjusted {
				f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), "Ajustado")
			}
		case RowJustification:
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), JustificationLabel(*dayRow.Justification))
		case RowWeekend:
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), "Final de Semana")
		default:
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), "Sem registro")
		}
	}

	summaryRow := len(data.Rows) + 8
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Horas esperadas")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow), hourbank.DecimalToHHMM(data.Summary.ExpectedHours))
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow+1), "Horas trabalhadas")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow+1), hourbank.DecimalToHHMM(data.Summary.WorkedHours))
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow+2), "Saldo do período")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow+2), hourbank.DecimalToHHMM(data.Summary.Balance))
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow+3), "Justificativas aprovadas")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow+3), data.Approved)

	f.SetColWidth(sheetName, "A", "A", 18)
	f.SetColWidth(sheetName, "B", "F", 12)
	f.SetColWidth(sheetName, "G", "G", 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
