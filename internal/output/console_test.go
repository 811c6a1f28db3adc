package output

import (
	"strings"
	"testing"
)

func TestRenderText(t *testing.T) {
	var b strings.Builder
	RenderText(&b, sampleReport())
	got := b.String()

	for _, want := range []string{
		"Order Analysis 2024-01-10 to 2024-01-10",
		"Order Summary",
		"Total Orders",
		"Delivery Performance",
		"Same Day",
		"Next Day",
		"Total",
		"Hub Wise Performance (Same Day)",
		"Hub Wise Performance (Next Day)",
		"Customer Wise Performance (Same Day)",
		"Customer Wise Performance (Next Day)",
		"Hebbal [ BH Micro warehouse ]",
		"Supertails",
		"33.33%",
		"66.7%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered report lacks %q", want)
		}
	}
}

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"totalOrders", "total_orders"},
		{"sameDayPct", "same_day_pct"},
		{"deliveryFrequency", "delivery_frequency"},
		{"name", "name"},
		{"Orders", "orders"},
	}
	for _, tt := range tests {
		if got := camelToSnake(tt.in); got != tt.want {
			t.Errorf("camelToSnake(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
