package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-billing-service/config"
	"github.com/jeffleon2/draftea-billing-service/internal/bitpay"
	"github.com/jeffleon2/draftea-billing-service/internal/database"
	handlers "github.com/jeffleon2/draftea-billing-service/internal/handlers"
	"github.com/jeffleon2/draftea-billing-service/internal/metrics"
	"github.com/jeffleon2/draftea-billing-service/internal/models"
	"github.com/jeffleon2/draftea-billing-service/internal/publisher"
	"github.com/jeffleon2/draftea-billing-service/internal/repository/posgrest"
	redisrepo "github.com/jeffleon2/draftea-billing-service/internal/repository/redis"
	"github.com/jeffleon2/draftea-billing-service/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	publisher *publisher.KafkaPublisher
	closers   []func() error
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	ctx := context.Background()

	db, err := cfg.DB.GormConnect()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Organization{}, &models.User{}, &models.Transaction{}); err != nil {
		logrus.Fatalf("failed to auto migrate: %v", err)
	}

	if os.Getenv("GO_ENV") == "local" {
		if err := database.SeedAccounts(db); err != nil {
			logrus.Warnf("failed to seed accounts: %v", err)
		}
	}

	transactionRepo := posgrest.NewTransactionRepository(db)
	organizationRepo := posgrest.New[models.Organization](db)
	userRepo := posgrest.New[models.User](db)

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	a.publisher = publisher.NewKafkaPublisher(brokers, publishTopics, cfg.Kafka.GetRetryConfig())
	a.closers = append(a.closers, a.publisher.Close)

	bitpayService := service.NewBitPayService(
		cfg.BitPay.WebhookKey,
		bitpay.NewClient(cfg.BitPay.BaseURL, cfg.BitPay.APIToken, cfg.BitPay.Timeout),
		transactionRepo,
		organizationRepo,
		userRepo,
		service.NewCreditService(),
		a.publisher,
		nil,
	)

	if cfg.Redis.ADDR != "" {
		client, err := redisrepo.Connect(ctx, cfg.Redis.ADDR, cfg.Redis.PASSWORD, cfg.Redis.DB)
		if err != nil {
			logrus.Fatalf("failed to connect to redis: %v", err)
		}
		bitpayService.Claimer = redisrepo.NewInvoiceClaimer(client, cfg.Redis.ClaimTTL)
		a.closers = append(a.closers, client.Close)
	}

	bitpayHandler := handlers.NewBitPayHandler(bitpayService)

	metrics.RegisterMetrics(prometheus.DefaultRegisterer)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(bitpayHandler)
}

func (a *App) Run() {
	defer a.Close()

	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		logrus.Errorf("server stopped: %v", err)
	}
}

func (a *App) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			logrus.Errorf("Error closing resource: %v", err)
		}
	}
}
