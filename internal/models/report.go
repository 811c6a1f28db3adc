package models

// Report table names. Output destinations key files, topics and tables off
// these, one per emitted table.
const (
	TopicOverallSummary      = "overall_summary"
	TopicDeliverySummary     = "delivery_summary"
	TopicHubWiseSameDay      = "hub_wise_same_day"
	TopicHubWiseNextDay      = "hub_wise_next_day"
	TopicCustomerWiseSameDay = "customer_wise_same_day"
	TopicCustomerWiseNextDay = "customer_wise_next_day"
)

// OverallSummary is the headline split of distinct orders picked up inside
// the selected range. Percentages are of the grand total, two decimals.
type OverallSummary struct {
	TotalOrders   int64   `json:"totalOrders" parquet:"name=totalOrders,type=INT64"`
	SameDayOrders int64   `json:"sameDayOrders" parquet:"name=sameDayOrders,type=INT64"`
	NextDayOrders int64   `json:"nextDayOrders" parquet:"name=nextDayOrders,type=INT64"`
	SameDayPct    float64 `json:"sameDayPct" parquet:"name=sameDayPct,type=DOUBLE"`
	NextDayPct    float64 `json:"nextDayPct" parquet:"name=nextDayPct,type=DOUBLE"`
}

// DeliverySummaryRow is one row of the delivery performance table: Same Day,
// Next Day, or Total. Percentage bases are the row's own order count, one
// decimal.
type DeliverySummaryRow struct {
	Frequency      string  `json:"deliveryFrequency" parquet:"name=deliveryFrequency,type=BYTE_ARRAY,convertedtype=UTF8"`
	Orders         int64   `json:"orders" parquet:"name=orders,type=INT64"`
	Attempted      int64   `json:"attempted" parquet:"name=attempted,type=INT64"`
	Delivered      int64   `json:"delivered" parquet:"name=delivered,type=INT64"`
	Unattempted    int64   `json:"unattempted" parquet:"name=unattempted,type=INT64"`
	AttemptedPct   float64 `json:"attemptedPct" parquet:"name=attemptedPct,type=DOUBLE"`
	DeliveredPct   float64 `json:"deliveredPct" parquet:"name=deliveredPct,type=DOUBLE"`
	UnattemptedPct float64 `json:"unattemptedPct" parquet:"name=unattemptedPct,type=DOUBLE"`
}

// BreakdownRow is one hub or customer row in a per-cohort breakdown table.
// Entities from the curated list that never appear in the data still get a
// zero-valued row.
type BreakdownRow struct {
	Name         string  `json:"name" parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	Orders       int64   `json:"orders" parquet:"name=orders,type=INT64"`
	Attempted    int64   `json:"attempted" parquet:"name=attempted,type=INT64"`
	Delivered    int64   `json:"delivered" parquet:"name=delivered,type=INT64"`
	AttemptedPct float64 `json:"attemptedPct" parquet:"name=attemptedPct,type=DOUBLE"`
	DeliveredPct float64 `json:"deliveredPct" parquet:"name=deliveredPct,type=DOUBLE"`
}

// Report is the complete output of one analysis run.
type Report struct {
	StartDate       string               `json:"start_date"`
	EndDate         string               `json:"end_date"`
	Overall         OverallSummary       `json:"overall_summary"`
	DeliverySummary []DeliverySummaryRow `json:"delivery_summary"`
	HubSameDay      []BreakdownRow       `json:"hub_wise_same_day"`
	HubNextDay      []BreakdownRow       `json:"hub_wise_next_day"`
	CustomerSameDay []BreakdownRow       `json:"customer_wise_same_day"`
	CustomerNextDay []BreakdownRow       `json:"customer_wise_next_day"`
}
