package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"predator-web/internal/config"
	"predator-web/internal/pkg/logger"
	"predator-web/pkg/llm"
)

func TestNewGateway(t *testing.T) {
	cfg := &config.Config{Payment: config.PaymentConfig{Gateway: GatewayPayFast, Sandbox: true}}
	gw, err := newGateway(cfg)
	require.NoError(t, err)
	assert.Equal(t, "PayFast", gw.Name())
	assert.True(t, gw.Sandbox())

	cfg.Payment.Gateway = GatewayMidtrans
	_, err = newGateway(cfg)
	assert.Error(t, err, "midtrans without a server key must fail")

	cfg.Payment.MidtransServerKey = "SB-Mid-server-test"
	gw, err = newGateway(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Midtrans", gw.Name())

	cfg.Payment.Gateway = "stripe"
	_, err = newGateway(cfg)
	assert.Error(t, err)
}

func TestNewContainer_RedisStoreNeedsRedis(t *testing.T) {
	cfg := &config.Config{
		App:      config.AppConfig{SessionStore: SessionStoreRedis},
		Database: config.DatabaseConfig{CatalogSource: "static"},
	}
	infra := &Infrastructure{
		Logger:   logger.NewNopLogger(),
		WSLogger: logger.NewNopLogger(),
		LLM:      llm.Unavailable(assert.AnError),
	}

	_, err := NewContainer(t.Context(), cfg, infra)
	assert.Error(t, err)
}

func TestNewContainer_DatabaseCatalogNeedsDB(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{CatalogSource: "database"}}
	infra := &Infrastructure{
		Logger:   logger.NewNopLogger(),
		WSLogger: logger.NewNopLogger(),
		LLM:      llm.Unavailable(assert.AnError),
	}

	_, err := NewContainer(t.Context(), cfg, infra)
	assert.Error(t, err)
}
