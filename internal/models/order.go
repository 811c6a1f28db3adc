package models

import "time"

// OrderRecord is one row of a raw order export. An order number may span
// multiple rows (multi-line shipments); counting is always by distinct
// order number. Timestamp fields are nil when the source cell was empty or
// unparsable.
type OrderRecord struct {
	OrderNumber            string     `json:"order_number"`
	Customer               string     `json:"customer"`
	DeliveryHub            string     `json:"delivery_hub"`
	PickedOn               *time.Time `json:"picked_on"`
	FirstAttemptedOn       *time.Time `json:"first_attempted_on"`
	DeliveredOn            *time.Time `json:"delivered_on"`
	LatestOutForDeliveryOn *time.Time `json:"latest_out_for_delivery_on"`
	LastAttemptedOn        *time.Time `json:"last_attempted_on"`
}
