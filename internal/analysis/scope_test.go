package analysis

import (
	"testing"

	"github.com/chrisdamba/dispatchlens/internal/models"
)

func TestScopeOrdersDeduplicates(t *testing.T) {
	rc := testConfig()
	w := Window{Start: day("2024-01-10"), End: day("2024-01-10")}

	orders := []models.OrderRecord{
		order("A-1", "Acme", "", ts("2024-01-10 09:00"), nil, nil),
		order("A-1", "Acme", "", ts("2024-01-10 09:00"), nil, nil),
		order("A-2", "Acme", "", ts("2024-01-10 10:00"), nil, nil),
	}

	scope := scopeOrders(orders, SameDay, w, nil, rc)
	if len(scope) != 2 {
		t.Fatalf("expected 2 distinct orders, got %d", len(scope))
	}
	if len(scope[0].rows) != 2 {
		t.Errorf("expected duplicate rows collapsed under one order, got %d rows", len(scope[0].rows))
	}
}

func TestScopeOrdersExcludesNilPickup(t *testing.T) {
	rc := testConfig()
	w := Window{Start: day("2024-01-10"), End: day("2024-01-10")}

	orders := []models.OrderRecord{
		order("A-1", "Acme", "", nil, ts("2024-01-10 12:00"), nil),
	}

	if scope := scopeOrders(orders, SameDay, w, nil, rc); len(scope) != 0 {
		t.Fatalf("row without pickup timestamp must be excluded, got %d orders", len(scope))
	}
}

func TestScopeOrdersRequiresCohortAndWindow(t *testing.T) {
	rc := testConfig()
	next := Window{Start: day("2024-01-09"), End: day("2024-01-09")}

	orders := []models.OrderRecord{
		// In the shifted window but same-day cohort: window alone is not
		// enough.
		order("A-1", "Acme", "", ts("2024-01-09 09:00"), nil, nil),
		// Next-day cohort but outside the shifted window.
		order("A-2", "Acme", "", ts("2024-01-10 16:00"), nil, nil),
		// Both conditions hold.
		order("A-3", "Acme", "", ts("2024-01-09 16:00"), nil, nil),
	}

	scope := scopeOrders(orders, NextDay, next, nil, rc)
	if len(scope) != 1 || scope[0].id != "A-3" {
		t.Fatalf("expected only A-3 in next-day scope, got %+v", scope)
	}
}

func TestScopeOrdersRowOrderIndependent(t *testing.T) {
	rc := testConfig()
	w := Window{Start: day("2024-01-10"), End: day("2024-01-11")}

	orders := []models.OrderRecord{
		order("A-1", "Acme", "", ts("2024-01-10 09:00"), nil, nil),
		order("A-2", "Acme", "", ts("2024-01-10 16:00"), nil, nil),
		order("A-3", "Supertails", "", ts("2024-01-11 10:00"), nil, nil),
		order("A-1", "Acme", "", ts("2024-01-10 09:00"), nil, nil),
	}

	reversed := make([]models.OrderRecord, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		reversed = append(reversed, orders[i])
	}

	if a, b := len(scopeOrders(orders, SameDay, w, nil, rc)), len(scopeOrders(reversed, SameDay, w, nil, rc)); a != b {
		t.Errorf("same-day scope size changed under permutation: %d vs %d", a, b)
	}
	if a, b := len(scopeOrders(orders, NextDay, w, nil, rc)), len(scopeOrders(reversed, NextDay, w, nil, rc)); a != b {
		t.Errorf("next-day scope size changed under permutation: %d vs %d", a, b)
	}
}

func TestScopeOrdersExtraFilter(t *testing.T) {
	rc := testConfig()
	w := Window{Start: day("2024-01-10"), End: day("2024-01-10")}
	hub := "Hebbal [ BH Micro warehouse ]"

	orders := []models.OrderRecord{
		order("A-1", "Acme", hub, ts("2024-01-10 09:00"), nil, nil),
		order("A-2", "Acme", "Kudlu [ BH Micro warehouse ]", ts("2024-01-10 09:00"), nil, nil),
		order("A-3", "Supertails", hub, ts("2024-01-10 09:00"), nil, nil),
	}

	scope := scopeOrders(orders, SameDay, w, filterByHub(hub), rc)
	if len(scope) != 2 {
		t.Fatalf("expected 2 orders for hub filter, got %d", len(scope))
	}

	scope = scopeOrders(orders, SameDay, w, filterByCustomer("Supertails"), rc)
	if len(scope) != 1 || scope[0].id != "A-3" {
		t.Fatalf("expected only A-3 for customer filter, got %+v", scope)
	}
}
