package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.POS.TaxRate.Equal(decimal.RequireFromString("0.12")))
	assert.Equal(t, "Q", cfg.POS.CurrencyPrefix)
	assert.Equal(t, 4*time.Hour, cfg.Redis.CartTTL)
	assert.False(t, cfg.Kafka.Enabled(), "sin KAFKA_BROKERS no se publica")
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("POS_TAX_RATE", "0.05")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CART_TTL_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.True(t, cfg.POS.TaxRate.Equal(decimal.RequireFromString("0.05")))
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, 15*time.Minute, cfg.Redis.CartTTL)
}

func TestLoad_TasaInvalida(t *testing.T) {
	t.Setenv("POS_TAX_RATE", "doce")
	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "pos", Password: "p@ss", DBName: "cazuela", SSLMode: "disable"}
	assert.Equal(t, "postgres://pos:p%40ss@db:5432/cazuela?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}

func TestPOSConfig_LocationInvalidaUsaLocal(t *testing.T) {
	assert.Equal(t, time.Local, POSConfig{Timezone: "No/Existe"}.Location())
}
