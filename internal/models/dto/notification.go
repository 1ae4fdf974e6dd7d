package dto

import (
	"errors"
	"strings"
)

const EventInvoiceConfirmed = "invoice_confirmed"

var ErrInvalidNotification = errors.New("invalid bitpay notification")

// BitPayEvent is the IPN body posted by BitPay. Only the invoice id and the
// event name are read; invoice content always comes from the gateway API.
type BitPayEvent struct {
	Data  BitPayEventData `json:"data"`
	Event BitPayEventInfo `json:"event"`
}

type BitPayEventData struct {
	ID string `json:"id"`
}

type BitPayEventInfo struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

func (e *BitPayEvent) Validate() error {
	if e == nil {
		return ErrInvalidNotification
	}
	if strings.TrimSpace(e.Data.ID) == "" || strings.TrimSpace(e.Event.Name) == "" {
		return ErrInvalidNotification
	}
	return nil
}

func (e *BitPayEvent) IsInvoiceConfirmed() bool {
	return e.Event.Name == EventInvoiceConfirmed
}
