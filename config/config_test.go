package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-billing-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("BITPAY_WEBHOOK_KEY", "secret")

	cfg, err := config.New()

	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.BitPay.WebhookKey)
	assert.Equal(t, "8080", cfg.APP.PORT)
	assert.Equal(t, "https://bitpay.com", cfg.BitPay.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.BitPay.Timeout)
	assert.Equal(t, "billing.account.credited", cfg.Kafka.PublishTopics)
	assert.Empty(t, cfg.Redis.ADDR)
	assert.Equal(t, 30*time.Second, cfg.Redis.ClaimTTL)
}

func TestNew_MissingWebhookKey(t *testing.T) {
	t.Setenv("BITPAY_WEBHOOK_KEY", "")
	require.NoError(t, os.Unsetenv("BITPAY_WEBHOOK_KEY"))

	cfg, err := config.New()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestGetRetryConfig(t *testing.T) {
	t.Setenv("BITPAY_WEBHOOK_KEY", "secret")
	t.Setenv("KAFKA_RETRY_MAX_ATTEMPTS", "3")
	t.Setenv("KAFKA_RETRY_BASE_DELAY", "250ms")
	t.Setenv("KAFKA_RETRY_JITTER", "false")

	cfg, err := config.New()
	require.NoError(t, err)

	retry := cfg.Kafka.GetRetryConfig()
	assert.Equal(t, 3, retry.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, retry.BaseDelay)
	assert.Equal(t, 10*time.Second, retry.MaxDelay)
	assert.False(t, retry.Jitter)
}
