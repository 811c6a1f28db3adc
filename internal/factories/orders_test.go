package factories

import (
	"testing"
	"time"

	"github.com/chrisdamba/dispatchlens/internal/models"
)

func TestCreateOrdersDeterministicWithSeed(t *testing.T) {
	rc := models.DefaultReportConfig()
	start := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)

	first := NewOrderExportFactory(rc, 42).CreateOrders(100, start, end)
	second := NewOrderExportFactory(rc, 42).CreateOrders(100, start, end)

	if len(first) != len(second) {
		t.Fatalf("row counts differ for the same seed: %d vs %d", len(first), len(second))
	}
	// Order ids and off-list company names come from unseeded generators;
	// the pickup schedule and hub assignment must still be reproducible.
	for i := range first {
		a, b := first[i], second[i]
		if a.DeliveryHub != b.DeliveryHub {
			t.Fatalf("row %d hub differs for the same seed: %q vs %q", i, a.DeliveryHub, b.DeliveryHub)
		}
		if (a.PickedOn == nil) != (b.PickedOn == nil) {
			t.Fatalf("row %d pickup presence differs for the same seed", i)
		}
		if a.PickedOn != nil && !a.PickedOn.Equal(*b.PickedOn) {
			t.Fatalf("row %d pickup differs for the same seed: %v vs %v", i, a.PickedOn, b.PickedOn)
		}
	}
}

func TestCreateOrdersPickupsInRange(t *testing.T) {
	rc := models.DefaultReportConfig()
	start := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	rows := NewOrderExportFactory(rc, 1).CreateOrders(200, start, end)
	if len(rows) < 200 {
		t.Fatalf("expected at least 200 rows, got %d", len(rows))
	}

	rangeEnd := end.AddDate(0, 0, 1)
	for _, row := range rows {
		if row.PickedOn == nil {
			continue
		}
		if row.PickedOn.Before(start) || !row.PickedOn.Before(rangeEnd) {
			t.Fatalf("pickup %v outside %v..%v", row.PickedOn, start, end)
		}
	}
}

func TestCreateOrdersOutcomeOrdering(t *testing.T) {
	rc := models.DefaultReportConfig()
	start := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)

	rows := NewOrderExportFactory(rc, 7).CreateOrders(300, start, end)

	var delivered int
	for _, row := range rows {
		if row.PickedOn == nil {
			if row.FirstAttemptedOn != nil || row.DeliveredOn != nil {
				t.Fatalf("outcome without pickup: %+v", row)
			}
			continue
		}
		if row.FirstAttemptedOn != nil && row.FirstAttemptedOn.Before(*row.PickedOn) {
			t.Fatalf("attempt before pickup: %+v", row)
		}
		if row.DeliveredOn != nil {
			delivered++
			if row.FirstAttemptedOn == nil || row.DeliveredOn.Before(*row.FirstAttemptedOn) {
				t.Fatalf("delivery before attempt: %+v", row)
			}
		}
	}
	if delivered == 0 {
		t.Fatal("expected some delivered orders in a 300-order sample")
	}
}
