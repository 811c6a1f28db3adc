package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chrisdamba/dispatchlens/internal/models"
	"github.com/schollz/progressbar/v3"
)

// ErrMissingColumn marks an export that lacks one of the required columns.
// The whole load fails; no partial order list is returned.
var ErrMissingColumn = errors.New("required column missing")

const (
	colOrderNumber      = "Order Number"
	colCustomer         = "Customer"
	colDeliveryHub      = "Delivery Hub"
	colPickedOn         = "Picked on"
	colFirstAttemptedOn = "First attempted on"
	colDeliveredOn      = "Delivered on"
	colLatestOFDOn      = "Latest Out-For-Delivery on"
	colLastAttemptedOn  = "Last attempted on"
)

var requiredColumns = []string{colOrderNumber, colCustomer, colPickedOn}

// timestampLayouts are tried in order; the first match wins. Cells matching
// none of them coerce to nil rather than failing the load.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05Z07:00",
	"02-01-2006 15:04",
	"2006-01-02",
}

// LoadResult is a parsed export plus the observed pickup date bounds, used
// to default the analysis range to the full data span.
type LoadResult struct {
	Orders      []models.OrderRecord
	MinPickedOn *time.Time
	MaxPickedOn *time.Time
}

// LoadCSV reads an order export from disk with a progress spinner on stderr.
func LoadCSV(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening order export: %w", err)
	}
	defer f.Close()

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("reading orders"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	defer bar.Finish()

	return readOrders(f, func(rows int) { _ = bar.Add(rows) })
}

// ReadOrders parses an order export from r without any progress reporting.
func ReadOrders(r io.Reader) (*LoadResult, error) {
	return readOrders(r, nil)
}

func readOrders(r io.Reader, progress func(int)) (*LoadResult, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty export: %w", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("reading export header: %w", err)
	}

	// Exports arrive with incidental whitespace around column names.
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	result := &LoadResult{}
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading export row: %w", err)
		}

		rec := models.OrderRecord{
			OrderNumber:            field(fields, cols, colOrderNumber),
			Customer:               field(fields, cols, colCustomer),
			DeliveryHub:            field(fields, cols, colDeliveryHub),
			PickedOn:               parseTimestamp(field(fields, cols, colPickedOn)),
			FirstAttemptedOn:       parseTimestamp(field(fields, cols, colFirstAttemptedOn)),
			DeliveredOn:            parseTimestamp(field(fields, cols, colDeliveredOn)),
			LatestOutForDeliveryOn: parseTimestamp(field(fields, cols, colLatestOFDOn)),
			LastAttemptedOn:        parseTimestamp(field(fields, cols, colLastAttemptedOn)),
		}
		result.Orders = append(result.Orders, rec)
		result.observePickup(rec.PickedOn)

		if progress != nil {
			progress(1)
		}
	}

	return result, nil
}

func (lr *LoadResult) observePickup(t *time.Time) {
	if t == nil {
		return
	}
	if lr.MinPickedOn == nil || t.Before(*lr.MinPickedOn) {
		lr.MinPickedOn = t
	}
	if lr.MaxPickedOn == nil || t.After(*lr.MaxPickedOn) {
		lr.MaxPickedOn = t
	}
}

func field(fields []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(fields) {
		return ""
	}
	return fields[i]
}

// parseTimestamp coerces a raw cell to a timestamp. Blank or unparsable
// cells become nil; a bad cell never fails the run.
func parseTimestamp(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
