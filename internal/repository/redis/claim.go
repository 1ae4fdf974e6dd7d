package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-billing-service/internal/models"
	"github.com/redis/go-redis/v9"
)

// InvoiceClaimer marks an invoice as being settled so that a concurrent
// delivery of the same notification backs off. The claim expires after ttl
// if the holder never releases it.
type InvoiceClaimer struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewInvoiceClaimer(client redis.Cmdable, ttl time.Duration) *InvoiceClaimer {
	return &InvoiceClaimer{client: client, ttl: ttl}
}

func (c *InvoiceClaimer) Claim(ctx context.Context, gateway models.GatewayType, invoiceID string) (bool, error) {
	return c.client.SetNX(ctx, claimKey(gateway, invoiceID), time.Now().UTC().Format(time.RFC3339Nano), c.ttl).Result()
}

func (c *InvoiceClaimer) Release(ctx context.Context, gateway models.GatewayType, invoiceID string) error {
	return c.client.Del(ctx, claimKey(gateway, invoiceID)).Err()
}

func claimKey(gateway models.GatewayType, invoiceID string) string {
	return fmt.Sprintf("billing:claim:%s:%s", gateway, invoiceID)
}
