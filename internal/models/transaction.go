package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string
type GatewayType string
type PaymentMethodType string

const (
	TransactionTypeCharge TransactionType = "CHARGE"

	GatewayBitPay GatewayType = "BITPAY"

	PaymentMethodBitPay PaymentMethodType = "BITPAY"
)

// Transaction is the append-only billing record. A (gateway, gateway_id) pair
// identifies at most one row.
type Transaction struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Amount            decimal.Decimal   `gorm:"type:numeric(19,2);not null" json:"amount"`
	CreationDate      time.Time         `gorm:"type:date;not null" json:"creation_date"`
	OrganizationID    *uuid.UUID        `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	UserID            *uuid.UUID        `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Type              TransactionType   `gorm:"not null" json:"type"`
	Gateway           GatewayType       `gorm:"uniqueIndex:idx_transactions_gateway_id;not null" json:"gateway"`
	GatewayID         string            `gorm:"uniqueIndex:idx_transactions_gateway_id;not null" json:"gateway_id"`
	PaymentMethodType PaymentMethodType `json:"payment_method_type"`
	Details           string            `json:"details"`
	Organization      *Organization     `gorm:"foreignKey:OrganizationID;constraint:OnDelete:SET NULL" json:"-"`
	User              *User             `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	return
}

// NewBitPayCharge builds the charge recorded for a confirmed invoice. The
// target decides which one of OrganizationID/UserID is set.
func NewBitPayCharge(invoice *Invoice, target CreditTarget) *Transaction {
	tx := &Transaction{
		Amount:            invoice.Price,
		CreationDate:      invoice.ConfirmationDate(),
		Type:              TransactionTypeCharge,
		Gateway:           GatewayBitPay,
		GatewayID:         invoice.ID,
		PaymentMethodType: PaymentMethodBitPay,
		Details:           invoice.ID,
	}

	id := target.ID
	switch target.Kind {
	case TargetOrganization:
		tx.OrganizationID = &id
	case TargetUser:
		tx.UserID = &id
	}

	return tx
}
