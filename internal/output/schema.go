package output

import (
	"fmt"
	"log"

	"github.com/chrisdamba/dispatchlens/internal/models"
	"github.com/xitongsys/parquet-go/schema"
)

// GetSchema builds the parquet schema handler for one report table from the
// tagged row struct behind its topic.
func GetSchema(topic string) (*schema.SchemaHandler, error) {
	var sh *schema.SchemaHandler
	var err error

	switch topic {
	case models.TopicOverallSummary:
		sh, err = schema.NewSchemaHandlerFromStruct(new(models.OverallSummary))
	case models.TopicDeliverySummary:
		sh, err = schema.NewSchemaHandlerFromStruct(new(models.DeliverySummaryRow))
	case models.TopicHubWiseSameDay,
		models.TopicHubWiseNextDay,
		models.TopicCustomerWiseSameDay,
		models.TopicCustomerWiseNextDay:
		sh, err = schema.NewSchemaHandlerFromStruct(new(models.BreakdownRow))
	default:
		return nil, fmt.Errorf("unknown report table: %s", topic)
	}

	if err != nil {
		log.Printf("Error creating schema for %s: %v", topic, err)
		return nil, fmt.Errorf("error creating schema for %s: %w", topic, err)
	}

	return sh, nil
}
