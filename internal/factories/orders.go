package factories

import (
	"math/rand"
	"time"

	"github.com/chrisdamba/dispatchlens/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var fake = faker.New()

// OrderExportFactory fabricates raw order-export rows with a realistic mix
// of cohorts, outcomes and data defects (blank hubs, missing timestamps,
// multi-line orders), for demos and pipeline testing.
type OrderExportFactory struct {
	rc  models.ReportConfig
	rng *rand.Rand
}

func NewOrderExportFactory(rc models.ReportConfig, seed int64) *OrderExportFactory {
	return &OrderExportFactory{rc: rc, rng: rand.New(rand.NewSource(seed))}
}

// CreateOrders fabricates count orders picked up between start and end,
// inclusive.
func (f *OrderExportFactory) CreateOrders(count int, start, end time.Time) []models.OrderRecord {
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}

	var rows []models.OrderRecord
	for i := 0; i < count; i++ {
		pickup := f.pickupTime(start, days)
		rec := models.OrderRecord{
			OrderNumber: "ORD-" + cuid.Slug(),
			Customer:    f.customer(),
			DeliveryHub: f.hub(),
			PickedOn:    &pickup,
		}

		// A few rows arrive with an unusable pickup timestamp.
		if f.rng.Float64() < 0.03 {
			rec.PickedOn = nil
		} else {
			f.applyOutcomes(&rec, pickup)
		}

		rows = append(rows, rec)

		// Multi-line shipments repeat the order number.
		if f.rng.Float64() < 0.1 {
			rows = append(rows, rec)
		}
	}
	return rows
}

func (f *OrderExportFactory) customer() string {
	if f.rng.Float64() < 0.85 && len(f.rc.Customers) > 0 {
		return f.rc.Customers[f.rng.Intn(len(f.rc.Customers))]
	}
	return fake.Company().Name()
}

func (f *OrderExportFactory) hub() string {
	if f.rng.Float64() < 0.9 && len(f.rc.Hubs) > 0 {
		return f.rc.Hubs[f.rng.Intn(len(f.rc.Hubs))]
	}
	return ""
}

func (f *OrderExportFactory) pickupTime(start time.Time, days int) time.Time {
	day := start.AddDate(0, 0, f.rng.Intn(days))
	// Most pickups land in the morning wave; the rest after the next-day
	// cutoff.
	hour := 8 + f.rng.Intn(6)
	if f.rng.Float64() < 0.3 {
		hour = f.rc.NextDayCutoffHour + f.rng.Intn(5)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, f.rng.Intn(60), 0, 0, time.UTC)
}

func (f *OrderExportFactory) applyOutcomes(rec *models.OrderRecord, pickup time.Time) {
	nextDay := pickup.Hour() >= f.rc.NextDayCutoffHour
	for _, name := range f.rc.NextDayCustomers {
		if rec.Customer == name {
			nextDay = true
		}
	}

	var attempt time.Time
	if nextDay {
		// Worked the following morning.
		day := pickup.AddDate(0, 0, 1)
		attempt = time.Date(day.Year(), day.Month(), day.Day(), 9+f.rng.Intn(9), f.rng.Intn(60), 0, 0, time.UTC)
	} else {
		attempt = pickup.Add(time.Duration(2+f.rng.Intn(4)) * time.Hour)
	}

	if f.rng.Float64() < 0.85 {
		ofd := attempt.Add(-time.Hour)
		rec.LatestOutForDeliveryOn = &ofd
		rec.FirstAttemptedOn = &attempt
		rec.LastAttemptedOn = &attempt

		if f.rng.Float64() < 0.85 {
			delivered := attempt.Add(time.Duration(10+f.rng.Intn(90)) * time.Minute)
			rec.DeliveredOn = &delivered
		}
	}
}
