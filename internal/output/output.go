package output

import (
	"encoding/json"
	"fmt"

	"github.com/chrisdamba/dispatchlens/internal/models"
)

// ReportDestination receives report rows as JSON messages, one topic per
// report table. The same interface covers files, Kafka and Postgres, so the
// engine never knows where its tables end up.
type ReportDestination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// ForConfig selects the destination the configuration asks for, or nil when
// only console rendering is wanted.
func ForConfig(cfg *models.Config) (ReportDestination, error) {
	if cfg.KafkaEnabled {
		return NewKafkaOutput(cfg)
	}
	if cfg.OutputPath == "" {
		return nil, nil
	}
	switch cfg.OutputFormat {
	case "parquet":
		return NewParquetOutput(cfg)
	case "json":
		return NewJSONOutput(cfg.OutputPath, cfg.OutputFolder), nil
	case "csv", "":
		return NewCSVOutput(cfg.OutputPath, cfg.OutputFolder), nil
	case "postgres":
		return NewPostgresOutput(&cfg.Database)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
	}
}

// WriteReport fans every table of the report out to dest, one message per
// row.
func WriteReport(dest ReportDestination, report *models.Report) error {
	if err := writeRow(dest, models.TopicOverallSummary, report.Overall); err != nil {
		return err
	}
	for _, row := range report.DeliverySummary {
		if err := writeRow(dest, models.TopicDeliverySummary, row); err != nil {
			return err
		}
	}
	tables := []struct {
		topic string
		rows  []models.BreakdownRow
	}{
		{models.TopicHubWiseSameDay, report.HubSameDay},
		{models.TopicHubWiseNextDay, report.HubNextDay},
		{models.TopicCustomerWiseSameDay, report.CustomerSameDay},
		{models.TopicCustomerWiseNextDay, report.CustomerNextDay},
	}
	for _, table := range tables {
		for _, row := range table.rows {
			if err := writeRow(dest, table.topic, row); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRow(dest ReportDestination, topic string, row interface{}) error {
	msg, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("marshalling %s row: %w", topic, err)
	}
	if err := dest.WriteMessage(topic, msg); err != nil {
		return fmt.Errorf("writing %s row: %w", topic, err)
	}
	return nil
}

// columnsFor fixes the column order of every emitted table; destinations
// with ordered columns (CSV, Postgres) must not depend on JSON map
// iteration.
func columnsFor(topic string) []string {
	switch topic {
	case models.TopicOverallSummary:
		return []string{"totalOrders", "sameDayOrders", "nextDayOrders", "sameDayPct", "nextDayPct"}
	case models.TopicDeliverySummary:
		return []string{"deliveryFrequency", "orders", "attempted", "delivered", "unattempted", "attemptedPct", "deliveredPct", "unattemptedPct"}
	default:
		return []string{"name", "orders", "attempted", "delivered", "attemptedPct", "deliveredPct"}
	}
}
