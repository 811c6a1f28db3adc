package analysis

import "math"

// outcomeCounts holds the distinct-order tallies for one scope. attempted is
// always a subset of the scope, so unattempted can never go negative.
// delivered is counted independently of attempted; rows that record a
// delivery without a qualifying first attempt still count as delivered only.
type outcomeCounts struct {
	orders      int
	attempted   int
	delivered   int
	unattempted int
}

// countSameDayOutcomes applies the same-day rule: an outcome qualifies when
// its date equals that row's own pickup date. An order qualifies when any of
// its rows does.
func countSameDayOutcomes(scope []scopedOrder) outcomeCounts {
	c := outcomeCounts{orders: len(scope)}
	for _, o := range scope {
		var attempted, delivered bool
		for _, r := range o.rows {
			if r.PickedOn == nil {
				continue
			}
			if r.FirstAttemptedOn != nil && sameDate(*r.FirstAttemptedOn, *r.PickedOn) {
				attempted = true
			}
			if r.DeliveredOn != nil && sameDate(*r.DeliveredOn, *r.PickedOn) {
				delivered = true
			}
		}
		if attempted {
			c.attempted++
		}
		if delivered {
			c.delivered++
		}
	}
	c.unattempted = c.orders - c.attempted
	return c
}

// countNextDayOutcomes applies the next-day rule: the outcome date must fall
// inside the original selected range, not the shifted pickup window the
// scope was searched with. Both bounds are inclusive, so an attempt dated
// before the range start does not qualify.
func countNextDayOutcomes(scope []scopedOrder, reference Window) outcomeCounts {
	c := outcomeCounts{orders: len(scope)}
	for _, o := range scope {
		var attempted, delivered bool
		for _, r := range o.rows {
			if r.FirstAttemptedOn != nil && reference.Contains(*r.FirstAttemptedOn) {
				attempted = true
			}
			if r.DeliveredOn != nil && reference.Contains(*r.DeliveredOn) {
				delivered = true
			}
		}
		if attempted {
			c.attempted++
		}
		if delivered {
			c.delivered++
		}
	}
	c.unattempted = c.orders - c.attempted
	return c
}

// pct returns count as a percentage of total. An empty scope reports 0
// rather than NaN.
func pct(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
