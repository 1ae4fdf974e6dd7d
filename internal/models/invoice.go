package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Only confirmed invoices are settled; paid, complete, expired and the
// other gateway states are treated as not confirmed.
const (
	InvoiceStatusConfirmed = "confirmed"

	CurrencyUSD = "USD"
)

// Invoice is the gateway's view of a payment request. CurrentTime is the
// gateway clock in epoch milliseconds at the moment the invoice was fetched.
type Invoice struct {
	ID          string          `json:"id"`
	Status      string          `json:"status"`
	Currency    string          `json:"currency"`
	Price       decimal.Decimal `json:"price"`
	CurrentTime int64           `json:"currentTime"`
	PosData     string          `json:"posData"`
}

// ConfirmationDate returns the UTC date of CurrentTime with the clock zeroed.
func (i *Invoice) ConfirmationDate() time.Time {
	t := time.UnixMilli(i.CurrentTime).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
