package analysis

import (
	"time"

	"github.com/chrisdamba/dispatchlens/internal/models"
)

// Cohort is the delivery cycle an order belongs to.
type Cohort int

const (
	SameDay Cohort = iota
	NextDay
)

func (c Cohort) String() string {
	if c == NextDay {
		return "Next Day"
	}
	return "Same Day"
}

// Classify assigns an order to a cohort from its customer and pickup time.
// An order is next-day when the customer is on the always-next-day list or
// the pickup hour is at or past the cutoff. Customer matching is exact and
// case-sensitive. A nil pickup time never triggers the hour rule, so such
// rows classify on the customer list alone.
func Classify(customer string, pickedOn *time.Time, rc models.ReportConfig) Cohort {
	for _, name := range rc.NextDayCustomers {
		if customer == name {
			return NextDay
		}
	}
	if pickedOn != nil && pickedOn.Hour() >= rc.NextDayCutoffHour {
		return NextDay
	}
	return SameDay
}
