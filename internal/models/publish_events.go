package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AccountCreditedTopic = "billing.account.credited"
)

type AccountCreditedEvent struct {
	TransactionID string          `json:"transaction_id"`
	TargetKind    TargetKind      `json:"target_kind"`
	TargetID      string          `json:"target_id"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
	Gateway       GatewayType     `json:"gateway"`
	InvoiceID     string          `json:"invoice_id"`
	CreditedAt    time.Time       `json:"credited_at"`
}
