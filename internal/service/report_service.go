package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nurpe/jobmarket/internal/model"
)

type ReportStore interface {
	BestProfession(ctx context.Context, from, to *time.Time) (*model.ProfessionEarnings, error)
	BestClient(ctx context.Context, from, to *time.Time) (*model.ClientSpending, error)
	ContractorEarnings(ctx context.Context, from, to *time.Time) ([]model.ProfessionEarnings, error)
}

type ExcelGenerator interface {
	Generate(report model.EarningsReport) ([]byte, error)
}

type ReportService struct {
	repo  ReportStore
	excel ExcelGenerator
}

func NewReportService(repo ReportStore, excel ExcelGenerator) *ReportService {
	return &ReportService{repo: repo, excel: excel}
}

func (s *ReportService) BestProfession(ctx context.Context, from, to *time.Time) (*model.ProfessionEarnings, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}
	row, err := s.repo.BestProfession(ctx, from, to)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: no paid jobs in period", ErrNotFound)
		}
		return nil, err
	}
	return row, nil
}

func (s *ReportService) BestClient(ctx context.Context, from, to *time.Time) (*model.ClientSpending, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}
	row, err := s.repo.BestClient(ctx, from, to)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: no paid jobs in period", ErrNotFound)
		}
		return nil, err
	}
	return row, nil
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// ExportEarnings renders the per-contractor earnings workbook.
func (s *ReportService) ExportEarnings(ctx context.Context, from, to *time.Time) (*ExportResult, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}
	rows, err := s.repo.ContractorEarnings(ctx, from, to)
	if err != nil {
		return nil, err
	}

	content, err := s.excel.Generate(model.EarningsReport{
		PeriodStart: from,
		PeriodEnd:   to,
		Rows:        rows,
	})
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		FileName: buildExportFileName(from, to),
		Content:  content,
	}, nil
}

func validatePeriod(from, to *time.Time) error {
	if from != nil && to != nil && from.After(*to) {
		return fmt.Errorf("%w: start must be before or equal to end", ErrInvalidInput)
	}
	return nil
}

func buildExportFileName(from, to *time.Time) string {
	period := "all"
	if from != nil || to != nil {
		period = fmt.Sprintf("%s-%s", formatPeriodBound(from), formatPeriodBound(to))
	}
	return fmt.Sprintf("earnings-%s.xlsx", period)
}

func formatPeriodBound(t *time.Time) string {
	if t == nil {
		return "open"
	}
	return t.Format("20060102")
}
