package models

import "github.com/shopspring/decimal"

// Destination is the persistence model for the destinations table.
type Destination struct {
	DestinationID string          `db:"destination_id"`
	City          string          `db:"city"`
	Country       string          `db:"country"`
	Latitude      decimal.Decimal `db:"latitude"`
	Longitude     decimal.Decimal `db:"longitude"`
	AuditFields
}
