package analysis

import (
	"github.com/chrisdamba/dispatchlens/internal/models"
)

// scopedOrder collapses every export row sharing one order number into a
// single counted unit.
type scopedOrder struct {
	id   string
	rows []models.OrderRecord
}

type rowFilter func(models.OrderRecord) bool

func filterByHub(hub string) rowFilter {
	return func(r models.OrderRecord) bool { return r.DeliveryHub == hub }
}

func filterByCustomer(name string) rowFilter {
	return func(r models.OrderRecord) bool { return r.Customer == name }
}

// scopeOrders selects the distinct orders whose pickup date falls inside the
// window AND whose cohort matches; both conditions are required. Rows with a
// nil pickup time cannot be dated and are excluded from every scope. The
// result is keyed by order number, so row order in the export never changes
// any count.
func scopeOrders(orders []models.OrderRecord, cohort Cohort, w Window, extra rowFilter, rc models.ReportConfig) []scopedOrder {
	index := make(map[string]int)
	var scoped []scopedOrder
	for _, row := range orders {
		if row.PickedOn == nil {
			continue
		}
		if !w.Contains(*row.PickedOn) {
			continue
		}
		if Classify(row.Customer, row.PickedOn, rc) != cohort {
			continue
		}
		if extra != nil && !extra(row) {
			continue
		}
		i, ok := index[row.OrderNumber]
		if !ok {
			i = len(scoped)
			index[row.OrderNumber] = i
			scoped = append(scoped, scopedOrder{id: row.OrderNumber})
		}
		scoped[i].rows = append(scoped[i].rows, row)
	}
	return scoped
}
