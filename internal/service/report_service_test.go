package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/nurpe/jobmarket/internal/model"
)

type fakeReportStore struct {
	best    *model.ProfessionEarnings
	client  *model.ClientSpending
	rows    []model.ProfessionEarnings
	gotFrom *time.Time
	gotTo   *time.Time
}

func (f *fakeReportStore) BestProfession(_ context.Context, from, to *time.Time) (*model.ProfessionEarnings, error) {
	f.gotFrom, f.gotTo = from, to
	if f.best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.best, nil
}

func (f *fakeReportStore) BestClient(_ context.Context, from, to *time.Time) (*model.ClientSpending, error) {
	f.gotFrom, f.gotTo = from, to
	if f.client == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.client, nil
}

func (f *fakeReportStore) ContractorEarnings(_ context.Context, from, to *time.Time) ([]model.ProfessionEarnings, error) {
	f.gotFrom, f.gotTo = from, to
	return f.rows, nil
}

type fakeExcelGenerator struct{}

func (fakeExcelGenerator) Generate(model.EarningsReport) ([]byte, error) {
	return []byte("xlsx"), nil
}

func TestBestProfession(t *testing.T) {
	repo := &fakeReportStore{best: &model.ProfessionEarnings{
		Contractor: "John Lenon", Profession: "Musician", AmountPaid: 300,
	}}
	svc := NewReportService(repo, fakeExcelGenerator{})

	from := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)
	row, err := svc.BestProfession(context.Background(), &from, &to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.Profession != "Musician" || row.AmountPaid != 300 {
		t.Fatalf("unexpected row %+v", row)
	}
	if repo.gotFrom == nil || !repo.gotFrom.Equal(from) {
		t.Fatalf("period start not forwarded")
	}
}

func TestBestProfessionEmpty(t *testing.T) {
	svc := NewReportService(&fakeReportStore{}, fakeExcelGenerator{})
	if _, err := svc.BestProfession(context.Background(), nil, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBestClientInvalidPeriod(t *testing.T) {
	svc := NewReportService(&fakeReportStore{}, fakeExcelGenerator{})
	from := time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.BestClient(context.Background(), &from, &to); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestExportEarningsFileName(t *testing.T) {
	from := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 8, 31, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		from *time.Time
		to   *time.Time
		want string
	}{
		{"no bounds", nil, nil, "earnings-all.xlsx"},
		{"both bounds", &from, &to, "earnings-20200801-20200831.xlsx"},
		{"open end", &from, nil, "earnings-20200801-open.xlsx"},
	}

	svc := NewReportService(&fakeReportStore{}, fakeExcelGenerator{})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.ExportEarnings(context.Background(), tc.from, tc.to)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.FileName != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, result.FileName)
			}
			if len(result.Content) == 0 {
				t.Fatalf("expected content")
			}
		})
	}
}
