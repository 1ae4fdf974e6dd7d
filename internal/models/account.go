package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Subscriber is an account that can hold billing credit.
type Subscriber interface {
	SubscriberID() uuid.UUID
	CreditBalance() decimal.Decimal
	SetCreditBalance(decimal.Decimal)
}

type Organization struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string          `gorm:"not null" json:"name"`
	BillingEmail string          `json:"billing_email"`
	Credit       decimal.Decimal `gorm:"type:numeric(19,2);not null;default:0" json:"credit"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (o *Organization) SubscriberID() uuid.UUID            { return o.ID }
func (o *Organization) CreditBalance() decimal.Decimal     { return o.Credit }
func (o *Organization) SetCreditBalance(v decimal.Decimal) { o.Credit = v }

type User struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string          `json:"name"`
	Email     string          `gorm:"uniqueIndex;not null" json:"email"`
	Credit    decimal.Decimal `gorm:"type:numeric(19,2);not null;default:0" json:"credit"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (u *User) SubscriberID() uuid.UUID            { return u.ID }
func (u *User) CreditBalance() decimal.Decimal     { return u.Credit }
func (u *User) SetCreditBalance(v decimal.Decimal) { u.Credit = v }
