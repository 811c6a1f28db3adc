package analysis

import (
	"time"

	"github.com/chrisdamba/dispatchlens/internal/models"
)

func ts(value string) *time.Time {
	layouts := []string{"2006-01-02 15:04", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	panic("bad test timestamp: " + value)
}

func day(value string) time.Time {
	return *ts(value)
}

func order(id, customer, hub string, picked, attempted, delivered *time.Time) models.OrderRecord {
	return models.OrderRecord{
		OrderNumber:      id,
		Customer:         customer,
		DeliveryHub:      hub,
		PickedOn:         picked,
		FirstAttemptedOn: attempted,
		DeliveredOn:      delivered,
	}
}

func testConfig() models.ReportConfig {
	return models.ReportConfig{
		NextDayCustomers:  []string{"The Whole Truth Foods", "ZISHTA TRADITIONS PRIVATE LIMITED", "Assembly Curefit"},
		NextDayCutoffHour: 15,
		Hubs:              []string{"Hebbal [ BH Micro warehouse ]", "Kudlu [ BH Micro warehouse ]"},
		Customers:         []string{"Acme", "Supertails", "The Whole Truth Foods"},
	}
}
