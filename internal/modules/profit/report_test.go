package profit

import (
	"context"
	"testing"

	"jovemservicos/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	bookings []domain.Booking
}

func (s staticSource) GetByStatus(_ context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0)
	for _, b := range s.bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func completed(ongID int64, base, final float64) domain.Booking {
	return domain.Booking{
		Status:     domain.BookingCompleted,
		OngID:      &ongID,
		BasePrice:  base,
		FinalPrice: &final,
	}
}

func TestReport_EmptySet(t *testing.T) {
	agg := NewAggregator(staticSource{})

	report, err := agg.Report(context.Background(), SortByTotalProfit)

	require.NoError(t, err)
	assert.Empty(t, report.Organizations)
	assert.Equal(t, 0.0, report.TotalProfit)
	assert.Equal(t, 0, report.TotalCompletedServices)
}

func TestReport_PerOrganizationRollup(t *testing.T) {
	agg := NewAggregator(staticSource{bookings: []domain.Booking{
		completed(1, 100, 120),
		completed(1, 80, 96),
		completed(2, 200, 240),
		{Status: domain.BookingCancelled, OngID: ptr(int64(1)), BasePrice: 50},
	}})

	report, err := agg.Report(context.Background(), SortByTotalProfit)

	require.NoError(t, err)
	require.Len(t, report.Organizations, 2)

	// org 2 leads on profit: 40 vs 36
	first := report.Organizations[0]
	assert.Equal(t, int64(2), first.OngID)
	assert.Equal(t, 1, first.TotalServices)
	assert.Equal(t, 200.0, first.BaseRevenue)
	assert.Equal(t, 240.0, first.TotalRevenue)
	assert.Equal(t, 40.0, first.TotalProfit)
	assert.Equal(t, 40.0, first.AvgProfitPerService)

	second := report.Organizations[1]
	assert.Equal(t, int64(1), second.OngID)
	assert.Equal(t, 2, second.TotalServices)
	assert.Equal(t, 36.0, second.TotalProfit)
	assert.Equal(t, 18.0, second.AvgProfitPerService)

	assert.Equal(t, 76.0, report.TotalProfit)
	assert.Equal(t, 3, report.TotalCompletedServices)
}

func TestReport_SortKeys(t *testing.T) {
	src := staticSource{bookings: []domain.Booking{
		completed(1, 100, 110), // profit 10, 1 service, avg 10
		completed(2, 50, 60),   // profit 10+10, 2 services, avg 10
		completed(2, 50, 60),
		completed(3, 10, 40), // profit 30, 1 service, avg 30
	}}
	agg := NewAggregator(src)

	byProfit, err := agg.Report(context.Background(), SortByTotalProfit)
	require.NoError(t, err)
	assert.Equal(t, int64(3), byProfit.Organizations[0].OngID)

	byCount, err := agg.Report(context.Background(), SortByTotalServices)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byCount.Organizations[0].OngID)

	byAvg, err := agg.Report(context.Background(), SortByAvgProfit)
	require.NoError(t, err)
	assert.Equal(t, int64(3), byAvg.Organizations[0].OngID)
	// orgs 1 and 2 tie on avg profit; stable sort keeps input order
	assert.Equal(t, int64(1), byAvg.Organizations[1].OngID)
	assert.Equal(t, int64(2), byAvg.Organizations[2].OngID)
}

func TestParseSortKey(t *testing.T) {
	key, ok := ParseSortKey("")
	assert.True(t, ok)
	assert.Equal(t, SortByTotalProfit, key)

	_, ok = ParseSortKey("unknown")
	assert.False(t, ok)

	key, ok = ParseSortKey("avgProfitPerService")
	assert.True(t, ok)
	assert.Equal(t, SortByAvgProfit, key)
}

func TestConfigService_ValidatesMargin(t *testing.T) {
	store := &memoryConfigStore{}
	svc := NewConfigService(store)

	assert.ErrorIs(t, svc.SetMarginPercent(context.Background(), -1), ErrInvalidMargin)
	assert.ErrorIs(t, svc.SetMarginPercent(context.Background(), 100.5), ErrInvalidMargin)

	require.NoError(t, svc.SetMarginPercent(context.Background(), 25))
	margin, err := svc.GetMarginPercent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 25.0, margin)
}

type memoryConfigStore struct {
	percent float64
}

func (s *memoryConfigStore) Get(_ context.Context) (*domain.ProfitConfig, error) {
	return &domain.ProfitConfig{ID: 1, ProfitMarginPercent: s.percent}, nil
}

func (s *memoryConfigStore) Set(_ context.Context, percent float64) error {
	s.percent = percent
	return nil
}

func ptr[T any](v T) *T { return &v }
