package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/jobmarket/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the contractor earnings workbook: one summary sheet with
// the report period and totals, one row per contractor.
func (g *Generator) Generate(report model.EarningsReport) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Earnings"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Report")
	set("B1", "Contractor earnings (paid jobs)")
	set("A2", "Period start")
	set("B2", formatBound(report.PeriodStart))
	set("A3", "Period end")
	set("B3", formatBound(report.PeriodEnd))
	set("A4", "Contractors")
	set("B4", len(report.Rows))
	set("A5", "Total paid")
	set("B5", formatAmount(totalPaid(report.Rows)))

	tableRow := 7
	set(fmt.Sprintf("A%d", tableRow), "Contractor")
	set(fmt.Sprintf("B%d", tableRow), "Profession")
	set(fmt.Sprintf("C%d", tableRow), "Amount paid")

	for i, row := range report.Rows {
		line := tableRow + 1 + i
		set(fmt.Sprintf("A%d", line), row.Contractor)
		set(fmt.Sprintf("B%d", line), row.Profession)
		set(fmt.Sprintf("C%d", line), formatAmount(row.AmountPaid))
	}

	_ = file.SetColWidth(sheet, "A", "A", 36)
	_ = file.SetColWidth(sheet, "B", "B", 24)
	_ = file.SetColWidth(sheet, "C", "C", 16)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func totalPaid(rows []model.ProfessionEarnings) float64 {
	total := 0.0
	for _, row := range rows {
		total += row.AmountPaid
	}
	return total
}

func formatBound(t *time.Time) string {
	if t == nil {
		return "open"
	}
	return t.Format("2006-01-02")
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
