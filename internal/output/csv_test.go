package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/chrisdamba/dispatchlens/internal/models"
)

func TestCSVOutputColumnOrder(t *testing.T) {
	dir := t.TempDir()
	out := NewCSVOutput(dir, "reports")

	if err := WriteReport(out, sampleReport()); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "reports", models.TopicDeliverySummary+".csv"))
	if err != nil {
		t.Fatalf("opening delivery summary file: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading delivery summary: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header + 3 rows, got %d records", len(records))
	}

	wantHeader := columnsFor(models.TopicDeliverySummary)
	if !reflect.DeepEqual(records[0], wantHeader) {
		t.Errorf("header = %v, want %v", records[0], wantHeader)
	}
	if records[1][0] != "Same Day" || records[2][0] != "Next Day" || records[3][0] != "Total" {
		t.Errorf("row order = %v/%v/%v, want Same Day/Next Day/Total",
			records[1][0], records[2][0], records[3][0])
	}
}

func TestCSVOutputOneFilePerTable(t *testing.T) {
	dir := t.TempDir()
	out := NewCSVOutput(dir, "reports")

	if err := WriteReport(out, sampleReport()); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	for _, topic := range []string{
		models.TopicOverallSummary,
		models.TopicDeliverySummary,
		models.TopicHubWiseSameDay,
		models.TopicHubWiseNextDay,
		models.TopicCustomerWiseSameDay,
		models.TopicCustomerWiseNextDay,
	} {
		if _, err := os.Stat(filepath.Join(dir, "reports", topic+".csv")); err != nil {
			t.Errorf("missing file for %s: %v", topic, err)
		}
	}
}
