package service

import (
	"context"
	"errors"

	"github.com/jeffleon2/draftea-billing-service/internal/models"
	"github.com/shopspring/decimal"
)

var ErrNilSubscriber = errors.New("subscriber is required")

// CreditService mutates the billing credit balance of organizations and users.
type CreditService struct{}

func NewCreditService() *CreditService {
	return &CreditService{}
}

// CreditAccount adds amount to the subscriber's credit balance in memory.
// It reports false, leaving the balance untouched, for non-positive amounts;
// persisting the subscriber is up to the caller.
func (s *CreditService) CreditAccount(ctx context.Context, subscriber models.Subscriber, amount decimal.Decimal) (bool, error) {
	if subscriber == nil {
		return false, ErrNilSubscriber
	}
	if !amount.IsPositive() {
		return false, nil
	}

	subscriber.SetCreditBalance(subscriber.CreditBalance().Add(amount))
	return true, nil
}
