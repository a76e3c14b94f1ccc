package profit

import (
	"context"
	"sort"

	"jovemservicos/internal/domain"
)

type SortKey string

const (
	SortByTotalProfit   SortKey = "totalProfit"
	SortByTotalServices SortKey = "totalServices"
	SortByAvgProfit     SortKey = "avgProfitPerService"
)

func ParseSortKey(raw string) (SortKey, bool) {
	switch SortKey(raw) {
	case SortByTotalProfit, SortByTotalServices, SortByAvgProfit:
		return SortKey(raw), true
	case "":
		return SortByTotalProfit, true
	default:
		return "", false
	}
}

type OrgReport struct {
	OngID               int64   `json:"ong_id"`
	TotalServices       int     `json:"total_services"`
	BaseRevenue         float64 `json:"base_revenue"`
	TotalRevenue        float64 `json:"total_revenue"`
	TotalProfit         float64 `json:"total_profit"`
	AvgProfitPerService float64 `json:"avg_profit_per_service"`
}

type Report struct {
	Organizations          []OrgReport `json:"organizations"`
	TotalProfit            float64     `json:"total_profit"`
	TotalCompletedServices int         `json:"total_completed_services"`
}

// CompletedBookingSource yields the completed-booking set the aggregator
// recomputes from on every call. No caching; reporting is admin-triggered
// and low-frequency.
type CompletedBookingSource interface {
	GetByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error)
}

type Aggregator struct {
	bookings CompletedBookingSource
}

func NewAggregator(bookings CompletedBookingSource) *Aggregator {
	return &Aggregator{bookings: bookings}
}

// Report rolls completed bookings up per organization. Profit is derived
// from the prices stamped at finalize time, so margin changes after the
// fact never move historical numbers. Ties keep first-seen input order.
func (a *Aggregator) Report(ctx context.Context, key SortKey) (*Report, error) {
	completed, err := a.bookings.GetByStatus(ctx, domain.BookingCompleted)
	if err != nil {
		return nil, err
	}

	index := make(map[int64]int)
	orgs := make([]OrgReport, 0)
	report := &Report{}

	for _, b := range completed {
		if b.OngID == nil || b.FinalPrice == nil {
			continue
		}
		i, ok := index[*b.OngID]
		if !ok {
			i = len(orgs)
			index[*b.OngID] = i
			orgs = append(orgs, OrgReport{OngID: *b.OngID})
		}
		orgs[i].TotalServices++
		orgs[i].BaseRevenue = round2(orgs[i].BaseRevenue + b.BasePrice)
		orgs[i].TotalRevenue = round2(orgs[i].TotalRevenue + *b.FinalPrice)
		report.TotalCompletedServices++
	}

	for i := range orgs {
		orgs[i].TotalProfit = round2(orgs[i].TotalRevenue - orgs[i].BaseRevenue)
		if orgs[i].TotalServices > 0 {
			orgs[i].AvgProfitPerService = round2(orgs[i].TotalProfit / float64(orgs[i].TotalServices))
		}
		report.TotalProfit = round2(report.TotalProfit + orgs[i].TotalProfit)
	}

	sort.SliceStable(orgs, func(i, j int) bool {
		switch key {
		case SortByTotalServices:
			return orgs[i].TotalServices > orgs[j].TotalServices
		case SortByAvgProfit:
			return orgs[i].AvgProfitPerService > orgs[j].AvgProfitPerService
		default:
			return orgs[i].TotalProfit > orgs[j].TotalProfit
		}
	})

	report.Organizations = orgs
	return report, nil
}
