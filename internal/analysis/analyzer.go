package analysis

import (
	"time"

	"github.com/chrisdamba/dispatchlens/internal/models"
)

const dateLayout = "2006-01-02"

// Analyze runs the full classification and roll-up over one order export.
// It is a pure function of its inputs: the same orders and range always
// produce the same report. On ErrInvalidRange or ErrNoDataInRange no partial
// report is returned.
func Analyze(orders []models.OrderRecord, start, end time.Time, rc models.ReportConfig) (*models.Report, error) {
	windows, err := ResolveWindows(start, end)
	if err != nil {
		return nil, err
	}

	sameScope := scopeOrders(orders, SameDay, windows.SameDay, nil, rc)
	nextScope := scopeOrders(orders, NextDay, windows.NextDay, nil, rc)

	// No datable pickup in the selected range and no next-day candidate from
	// the shifted window: nothing to report on at all, which is distinct
	// from a report full of zero rows.
	if !anyPickupInWindow(orders, windows.SameDay) && len(nextScope) == 0 {
		return nil, ErrNoDataInRange
	}

	sameCounts := countSameDayOutcomes(sameScope)
	nextCounts := countNextDayOutcomes(nextScope, windows.SameDay)

	return &models.Report{
		StartDate:       windows.SameDay.Start.Format(dateLayout),
		EndDate:         windows.SameDay.End.Format(dateLayout),
		Overall:         buildOverallSummary(orders, windows.SameDay, rc),
		DeliverySummary: buildDeliverySummary(sameCounts, nextCounts),
		HubSameDay:      buildBreakdown(orders, rc.Hubs, filterByHub, SameDay, windows.SameDay, windows.SameDay, rc),
		HubNextDay:      buildBreakdown(orders, rc.Hubs, filterByHub, NextDay, windows.NextDay, windows.SameDay, rc),
		CustomerSameDay: buildBreakdown(orders, rc.Customers, filterByCustomer, SameDay, windows.SameDay, windows.SameDay, rc),
		CustomerNextDay: buildBreakdown(orders, rc.Customers, filterByCustomer, NextDay, windows.NextDay, windows.SameDay, rc),
	}, nil
}

func anyPickupInWindow(orders []models.OrderRecord, w Window) bool {
	for _, row := range orders {
		if row.PickedOn != nil && w.Contains(*row.PickedOn) {
			return true
		}
	}
	return false
}
