package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-billing-service/internal/metrics"
	"github.com/jeffleon2/draftea-billing-service/internal/models"
	"github.com/jeffleon2/draftea-billing-service/internal/models/dto"
	"github.com/jeffleon2/draftea-billing-service/internal/posdata"
	"github.com/jeffleon2/draftea-billing-service/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// TransactionRepo persists billing transactions. Create must fail with
// repository.ErrDanglingReference when the referenced account is gone and
// with repository.ErrDuplicate when the (gateway, gateway id) pair exists.
type TransactionRepo interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByGatewayID(ctx context.Context, gateway models.GatewayType, gatewayID string) (*models.Transaction, error)
}

// OrganizationRepo returns nil, nil from GetByID for unknown ids.
type OrganizationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	Replace(ctx context.Context, org *models.Organization) error
}

// UserRepo returns nil, nil from GetByID for unknown ids.
type UserRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Replace(ctx context.Context, user *models.User) error
}

// InvoiceClient looks invoices up on the gateway. A nil invoice means the
// gateway does not know the id.
type InvoiceClient interface {
	GetInvoice(ctx context.Context, id string) (*models.Invoice, error)
}

type AccountCreditor interface {
	CreditAccount(ctx context.Context, subscriber models.Subscriber, amount decimal.Decimal) (bool, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// InvoiceClaimer guards an invoice while it is being settled.
type InvoiceClaimer interface {
	Claim(ctx context.Context, gateway models.GatewayType, invoiceID string) (bool, error)
	Release(ctx context.Context, gateway models.GatewayType, invoiceID string) error
}

// BitPayService turns BitPay IPN notifications into account credits.
//
// Each notification goes through the same gates in order: shared key and
// payload shape, event name, invoice re-fetched from BitPay, posData
// correlation, idempotency on the invoice id, and finally settlement. The
// first gate that does not pass decides the result.
//
// Publisher and Claimer are optional. PublishTimeout bounds the credited
// event publication, which happens after the credit is committed.
type BitPayService struct {
	WebhookKey     string
	Invoices       InvoiceClient
	Transactions   TransactionRepo
	Organizations  OrganizationRepo
	Users          UserRepo
	Creditor       AccountCreditor
	Publisher      Publisher
	Claimer        InvoiceClaimer
	PublishTimeout time.Duration
}

const defaultPublishTimeout = 5 * time.Second

func NewBitPayService(
	webhookKey string,
	invoices InvoiceClient,
	transactions TransactionRepo,
	organizations OrganizationRepo,
	users UserRepo,
	creditor AccountCreditor,
	publisher Publisher,
	claimer InvoiceClaimer,
) *BitPayService {
	return &BitPayService{
		WebhookKey:    webhookKey,
		Invoices:      invoices,
		Transactions:  transactions,
		Organizations: organizations,
		Users:         users,
		Creditor:      creditor,
		Publisher:     publisher,
		Claimer:       claimer,

		PublishTimeout: defaultPublishTimeout,
	}
}

// ProcessNotification runs one IPN through the pipeline. A returned error is
// an unclassified failure the gateway should retry; every other result,
// including rejections, comes back with a nil error.
func (s *BitPayService) ProcessNotification(ctx context.Context, key string, event *dto.BitPayEvent) (models.Result, error) {
	if !s.authenticate(key) {
		return models.Rejected(models.ReasonInvalidKey), nil
	}
	if err := event.Validate(); err != nil {
		return models.Rejected(models.ReasonInvalidPayload), nil
	}

	if !event.IsInvoiceConfirmed() {
		return models.Ignored(models.ReasonUnhandledEvent), nil
	}

	invoice, err := s.fetchInvoice(ctx, event.Data.ID)
	if err != nil {
		return models.Result{}, fmt.Errorf("fetching invoice %s: %w", event.Data.ID, err)
	}
	if invoice == nil || invoice.Status != models.InvoiceStatusConfirmed {
		logrus.WithField("invoice_id", event.Data.ID).Warn("Forged invoice detected")
		return models.Rejected(models.ReasonForgedInvoice), nil
	}

	log := logrus.WithField("invoice_id", invoice.ID)

	if invoice.Currency != models.CurrencyUSD {
		log.WithField("currency", invoice.Currency).Warn("Non USD payment received")
		return models.Ignored(models.ReasonUnsupportedCurrency), nil
	}

	md := posdata.Parse(invoice.PosData)
	target, ok := md.Target()
	if !ok {
		return models.Ignored(models.ReasonNoCorrelation), nil
	}
	if !md.AccountCredit {
		log.Warn("Non-credit payment received")
		return models.Ignored(models.ReasonNotAccountCredit), nil
	}

	if s.Claimer != nil {
		claimed, err := s.Claimer.Claim(ctx, models.GatewayBitPay, invoice.ID)
		switch {
		case err != nil:
			log.Warnf("Invoice claim unavailable, relying on storage constraints: %s", err.Error())
		case !claimed:
			log.Warn("Confirmed invoice is already being processed")
			return models.Ignored(models.ReasonInFlight), nil
		default:
			defer s.release(ctx, invoice.ID)
		}
	}

	existing, err := s.Transactions.GetByGatewayID(ctx, models.GatewayBitPay, invoice.ID)
	if err != nil {
		return models.Result{}, fmt.Errorf("looking up transaction for invoice %s: %w", invoice.ID, err)
	}
	if existing != nil {
		log.Warn("Already processed this confirmed invoice")
		return models.Ignored(models.ReasonAlreadyProcessed), nil
	}

	return s.settle(ctx, invoice, target)
}

func (s *BitPayService) authenticate(key string) bool {
	if s.WebhookKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(s.WebhookKey)) == 1
}

func (s *BitPayService) fetchInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	start := time.Now()
	defer func() {
		metrics.InvoiceLookupDuration.Observe(time.Since(start).Seconds())
	}()
	return s.Invoices.GetInvoice(ctx, id)
}

func (s *BitPayService) release(ctx context.Context, invoiceID string) {
	if err := s.Claimer.Release(context.WithoutCancel(ctx), models.GatewayBitPay, invoiceID); err != nil {
		logrus.WithField("invoice_id", invoiceID).Errorf("Error releasing invoice claim: %s", err.Error())
	}
}

// settle records the charge and credits the target account. The transaction
// is written first; a target deleted in the meantime only skips the credit.
func (s *BitPayService) settle(ctx context.Context, invoice *models.Invoice, target models.CreditTarget) (models.Result, error) {
	tx := models.NewBitPayCharge(invoice, target)

	if err := s.Transactions.Create(ctx, tx); err != nil {
		switch {
		case errors.Is(err, repository.ErrDanglingReference):
			return models.Settled(models.ReasonDanglingReference), nil
		case errors.Is(err, repository.ErrDuplicate):
			logrus.WithField("invoice_id", invoice.ID).Warn("Already processed this confirmed invoice")
			return models.Ignored(models.ReasonAlreadyProcessed), nil
		default:
			return models.Result{}, fmt.Errorf("creating transaction for invoice %s: %w", invoice.ID, err)
		}
	}

	subscriber, err := s.loadSubscriber(ctx, target)
	if err != nil {
		return models.Result{}, err
	}
	if subscriber == nil {
		return models.Settled(models.ReasonTargetMissing), nil
	}

	credited, err := s.Creditor.CreditAccount(ctx, subscriber, tx.Amount)
	if err != nil {
		return models.Result{}, fmt.Errorf("crediting %s %s: %w", target.Kind, target.ID, err)
	}
	if !credited {
		return models.Settled(models.ReasonCreditDeclined), nil
	}

	if err := s.replaceSubscriber(ctx, subscriber); err != nil {
		return models.Result{}, fmt.Errorf("saving %s %s: %w", target.Kind, target.ID, err)
	}

	metrics.AccountCreditsTotal.WithLabelValues(string(target.Kind)).Inc()
	metrics.AccountCreditAmounts.WithLabelValues(string(target.Kind)).Observe(tx.Amount.InexactFloat64())

	s.publishCredited(ctx, tx, target, subscriber)

	return models.Settled(models.ReasonCredited), nil
}

func (s *BitPayService) loadSubscriber(ctx context.Context, target models.CreditTarget) (models.Subscriber, error) {
	switch target.Kind {
	case models.TargetOrganization:
		org, err := s.Organizations.GetByID(ctx, target.ID)
		if err != nil {
			return nil, fmt.Errorf("loading organization %s: %w", target.ID, err)
		}
		if org == nil {
			return nil, nil
		}
		return org, nil
	case models.TargetUser:
		user, err := s.Users.GetByID(ctx, target.ID)
		if err != nil {
			return nil, fmt.Errorf("loading user %s: %w", target.ID, err)
		}
		if user == nil {
			return nil, nil
		}
		return user, nil
	default:
		return nil, fmt.Errorf("unknown credit target kind %q", target.Kind)
	}
}

func (s *BitPayService) replaceSubscriber(ctx context.Context, subscriber models.Subscriber) error {
	switch v := subscriber.(type) {
	case *models.Organization:
		return s.Organizations.Replace(ctx, v)
	case *models.User:
		return s.Users.Replace(ctx, v)
	default:
		return fmt.Errorf("unsupported subscriber %T", subscriber)
	}
}

func (s *BitPayService) publishCredited(ctx context.Context, tx *models.Transaction, target models.CreditTarget, subscriber models.Subscriber) {
	if s.Publisher == nil {
		return
	}

	event := models.AccountCreditedEvent{
		TransactionID: tx.ID.String(),
		TargetKind:    target.Kind,
		TargetID:      subscriber.SubscriberID().String(),
		Amount:        tx.Amount,
		Balance:       subscriber.CreditBalance(),
		Gateway:       tx.Gateway,
		InvoiceID:     tx.GatewayID,
		CreditedAt:    time.Now().UTC(),
	}

	timeout := s.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := s.Publisher.Publish(ctx, models.AccountCreditedTopic, event); err != nil {
		logrus.WithField("invoice_id", tx.GatewayID).Errorf("Error publishing account credited event: %s", err.Error())
	}
}
