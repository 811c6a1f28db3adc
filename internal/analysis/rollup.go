package analysis

import (
	"github.com/chrisdamba/dispatchlens/internal/models"
)

// buildOverallSummary splits the distinct orders picked up inside the
// selected range by cohort. Percentages are of the grand total, two
// decimals.
func buildOverallSummary(orders []models.OrderRecord, w Window, rc models.ReportConfig) models.OverallSummary {
	seen := make(map[string]struct{})
	nextDay := make(map[string]struct{})
	for _, row := range orders {
		if row.PickedOn == nil || !w.Contains(*row.PickedOn) {
			continue
		}
		seen[row.OrderNumber] = struct{}{}
		if Classify(row.Customer, row.PickedOn, rc) == NextDay {
			nextDay[row.OrderNumber] = struct{}{}
		}
	}
	total := len(seen)
	next := len(nextDay)
	same := total - next
	return models.OverallSummary{
		TotalOrders:   int64(total),
		SameDayOrders: int64(same),
		NextDayOrders: int64(next),
		SameDayPct:    round2(pct(same, total)),
		NextDayPct:    round2(pct(next, total)),
	}
}

// buildDeliverySummary assembles the three-row performance table. The Total
// row sums the cohort counts and recomputes its percentages against the
// summed total; it never averages the cohort percentages.
func buildDeliverySummary(same, next outcomeCounts) []models.DeliverySummaryRow {
	total := outcomeCounts{
		orders:      same.orders + next.orders,
		attempted:   same.attempted + next.attempted,
		delivered:   same.delivered + next.delivered,
		unattempted: same.unattempted + next.unattempted,
	}
	return []models.DeliverySummaryRow{
		deliverySummaryRow(SameDay.String(), same),
		deliverySummaryRow(NextDay.String(), next),
		deliverySummaryRow("Total", total),
	}
}

func deliverySummaryRow(label string, c outcomeCounts) models.DeliverySummaryRow {
	return models.DeliverySummaryRow{
		Frequency:      label,
		Orders:         int64(c.orders),
		Attempted:      int64(c.attempted),
		Delivered:      int64(c.delivered),
		Unattempted:    int64(c.unattempted),
		AttemptedPct:   round1(pct(c.attempted, c.orders)),
		DeliveredPct:   round1(pct(c.delivered, c.orders)),
		UnattemptedPct: round1(pct(c.unattempted, c.orders)),
	}
}

// buildBreakdown produces one row per curated entity name, in list order.
// Names absent from the data yield explicit zero rows; entities off the list
// are not reported at all.
func buildBreakdown(orders []models.OrderRecord, names []string, filter func(string) rowFilter, cohort Cohort, pickup Window, reference Window, rc models.ReportConfig) []models.BreakdownRow {
	rows := make([]models.BreakdownRow, 0, len(names))
	for _, name := range names {
		scope := scopeOrders(orders, cohort, pickup, filter(name), rc)
		var c outcomeCounts
		if cohort == NextDay {
			c = countNextDayOutcomes(scope, reference)
		} else {
			c = countSameDayOutcomes(scope)
		}
		rows = append(rows, models.BreakdownRow{
			Name:         name,
			Orders:       int64(c.orders),
			Attempted:    int64(c.attempted),
			Delivered:    int64(c.delivered),
			AttemptedPct: round1(pct(c.attempted, c.orders)),
			DeliveredPct: round1(pct(c.delivered, c.orders)),
		})
	}
	return rows
}
