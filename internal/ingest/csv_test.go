package ingest

import (
	"errors"
	"strings"
	"testing"
)

func TestReadOrdersHeaderWhitespace(t *testing.T) {
	csvData := " Order Number , Customer ,Delivery Hub, Picked on ,First attempted on,Delivered on\n" +
		"A-1,Acme,Hebbal [ BH Micro warehouse ],2024-01-10 09:00:00,2024-01-10 13:00:00,\n"

	result, err := ReadOrders(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ReadOrders: %v", err)
	}
	if len(result.Orders) != 1 {
		t.Fatalf("expected 1 row, got %d", len(result.Orders))
	}

	o := result.Orders[0]
	if o.OrderNumber != "A-1" || o.Customer != "Acme" {
		t.Errorf("columns mapped wrong: %+v", o)
	}
	if o.PickedOn == nil || o.PickedOn.Hour() != 9 {
		t.Errorf("pickup timestamp not parsed: %v", o.PickedOn)
	}
	if o.FirstAttemptedOn == nil {
		t.Errorf("first attempt timestamp not parsed")
	}
	if o.DeliveredOn != nil {
		t.Errorf("blank delivery cell must stay nil, got %v", o.DeliveredOn)
	}
}

func TestReadOrdersMissingRequiredColumn(t *testing.T) {
	csvData := "Order Number,Customer\nA-1,Acme\n"

	_, err := ReadOrders(strings.NewReader(csvData))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}

func TestReadOrdersEmptyExport(t *testing.T) {
	_, err := ReadOrders(strings.NewReader(""))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn for empty export, got %v", err)
	}
}

func TestReadOrdersCoercesBadTimestamps(t *testing.T) {
	csvData := "Order Number,Customer,Picked on\n" +
		"A-1,Acme,not a timestamp\n" +
		"A-2,Acme,2024-01-10 09:30:00\n"

	result, err := ReadOrders(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ReadOrders: %v", err)
	}
	if len(result.Orders) != 2 {
		t.Fatalf("bad cell must not drop the row: got %d rows", len(result.Orders))
	}
	if result.Orders[0].PickedOn != nil {
		t.Errorf("unparsable timestamp must coerce to nil, got %v", result.Orders[0].PickedOn)
	}
	if result.Orders[1].PickedOn == nil {
		t.Errorf("valid timestamp dropped")
	}
}

func TestReadOrdersPickupBounds(t *testing.T) {
	csvData := "Order Number,Customer,Picked on\n" +
		"A-1,Acme,2024-01-12 09:00:00\n" +
		"A-2,Acme,2024-01-10 16:00:00\n" +
		"A-3,Acme,\n" +
		"A-4,Acme,2024-01-11 08:00:00\n"

	result, err := ReadOrders(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ReadOrders: %v", err)
	}
	if result.MinPickedOn == nil || result.MaxPickedOn == nil {
		t.Fatalf("pickup bounds not observed")
	}
	if result.MinPickedOn.Day() != 10 {
		t.Errorf("min pickup day = %d, want 10", result.MinPickedOn.Day())
	}
	if result.MaxPickedOn.Day() != 12 {
		t.Errorf("max pickup day = %d, want 12", result.MaxPickedOn.Day())
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"datetime with seconds", "2024-01-10 09:00:00", true},
		{"datetime without seconds", "2024-01-10 09:00", true},
		{"date only", "2024-01-10", true},
		{"dd-mm-yyyy export variant", "10-01-2024 09:00", true},
		{"garbage", "picked up yesterday", false},
		{"blank", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTimestamp(tt.value)
			if tt.valid && got == nil {
				t.Errorf("parseTimestamp(%q) = nil, want a timestamp", tt.value)
			}
			if !tt.valid && got != nil {
				t.Errorf("parseTimestamp(%q) = %v, want nil", tt.value, got)
			}
		})
	}
}
