package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/jobmarket/internal/model"
)

func TestGenerateEarningsWorkbook(t *testing.T) {
	from := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	report := model.EarningsReport{
		PeriodStart: &from,
		Rows: []model.ProfessionEarnings{
			{Contractor: "John Lenon", Profession: "Musician", AmountPaid: 300},
			{Contractor: "Linus Torvalds", Profession: "Programmer", AmountPaid: 121},
		},
	}

	content, err := NewGenerator().Generate(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(content) == 0 {
		t.Fatalf("expected workbook content")
	}

	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer file.Close()

	cases := []struct {
		cell string
		want string
	}{
		{"B2", "2020-08-01"},
		{"B3", "open"},
		{"A8", "John Lenon"},
		{"B8", "Musician"},
		{"C8", "300.00"},
		{"A9", "Linus Torvalds"},
		{"C5", "421.00"},
	}
	for _, tc := range cases {
		got, err := file.GetCellValue("Earnings", tc.cell)
		if err != nil {
			t.Fatalf("read %s: %v", tc.cell, err)
		}
		if got != tc.want {
			t.Fatalf("cell %s: expected %q, got %q", tc.cell, tc.want, got)
		}
	}
}

func TestGenerateEmptyReport(t *testing.T) {
	content, err := NewGenerator().Generate(model.EarningsReport{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(content) == 0 {
		t.Fatalf("expected workbook content")
	}
}
