package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		// Viper errors on an explicitly named missing file; load without a path.
		cfg, err = Load("")
	}
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "custody_ledger", cfg.Database.DBName)
	assert.Equal(t, "CUSD", cfg.Ledger.TokenSymbol)
	assert.Equal(t, "ledger.events", cfg.Ledger.EventStream)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9090
ledger:
  token_symbol: TCL
  instance_id: ledger-test-1
database:
  dbname: ledger_test
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "TCL", cfg.Ledger.TokenSymbol)
	assert.Equal(t, "ledger-test-1", cfg.Ledger.InstanceID)
	assert.Equal(t, "ledger_test", cfg.Database.DBName)
	// Untouched values keep defaults.
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CDL_LEDGER_INSTANCE_ID", "ledger-env")
	t.Setenv("CDL_SERVER_PORT", "7001")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "ledger-env", cfg.Ledger.InstanceID)
	assert.Equal(t, 7001, cfg.Server.Port)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5433, User: "u", Password: "p",
		DBName: "ledger", SSLMode: "require",
	}
	assert.Equal(t, "postgres://u:p@db:5433/ledger?sslmode=require", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}
