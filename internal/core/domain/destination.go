package domain

import "github.com/shopspring/decimal"

// Destination is a globally shared map pin. There is no per-user ownership:
// any authenticated user may create or delete any destination.
type Destination struct {
	DestinationID string          `json:"destinationID"`
	City          string          `json:"city"`
	Country       string          `json:"country"`
	Latitude      decimal.Decimal `json:"latitude"`
	Longitude     decimal.Decimal `json:"longitude"`
	AuditFields
}
