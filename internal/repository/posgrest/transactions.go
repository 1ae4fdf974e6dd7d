package posgrest

import (
	"context"

	"github.com/jeffleon2/draftea-billing-service/internal/models"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	*repository[models.Transaction]
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{New[models.Transaction](db)}
}

// GetByGatewayID finds the transaction recorded for a gateway's own id.
func (r *TransactionRepository) GetByGatewayID(ctx context.Context, gateway models.GatewayType, gatewayID string) (*models.Transaction, error) {
	return r.FirstBy(ctx, map[string]interface{}{
		"gateway":    string(gateway),
		"gateway_id": gatewayID,
	})
}
