package database

import (
	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-billing-service/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Fixed ids so local posData strings can be written by hand.
var (
	SeedOrganizationID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	SeedUserID         = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func SeedAccounts(db *gorm.DB) error {
	organizations := []models.Organization{
		{ID: SeedOrganizationID, Name: "Acme Corp", BillingEmail: "billing@acme.example.com"},
	}
	users := []models.User{
		{ID: SeedUserID, Name: "Alice", Email: "alice@example.com"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Name: "Bob", Email: "bob@example.com"},
	}

	for _, org := range organizations {
		if err := db.Where(models.Organization{ID: org.ID}).FirstOrCreate(&org).Error; err != nil {
			return err
		}
	}
	for _, user := range users {
		if err := db.Where(models.User{ID: user.ID}).FirstOrCreate(&user).Error; err != nil {
			return err
		}
	}

	logrus.Info("Accounts seeded successfully")
	return nil
}
