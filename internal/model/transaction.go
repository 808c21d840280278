package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a card purchase row from the transactions table,
// normalized to the canonical schema.
type Transaction struct {
	UserID   int             `json:"user_id"`
	Date     time.Time       `json:"date"`
	Amount   decimal.Decimal `json:"amount"` // absolute purchase amount
	Merchant string          `json:"merchant"`
	Category string          `json:"category"`
	MCC      int             `json:"mcc"`
}

// EnrichedTransaction is a Transaction after classification and eco-point
// assignment. MCCStatus reflects the MCC table lookup alone; IsGreen may
// additionally be set via the green category list.
type EnrichedTransaction struct {
	Transaction

	MCCStatus      GreenStatus `json:"mcc_status"`
	IsGreen        bool        `json:"is_green"`
	EcoPoints      int64       `json:"eco_points"`
	RepeatPurchase bool        `json:"repeat_purchase"`
}
