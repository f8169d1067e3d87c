package db

import (
	"testing"

	"lingo-gate/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubConfigManager implements types.ConfigManager with a configurable DSN.
type stubConfigManager struct {
	dsn string
}

func (s *stubConfigManager) GetAuthConfig() types.AuthConfig       { return types.AuthConfig{} }
func (s *stubConfigManager) GetBackendConfig() types.BackendConfig { return types.BackendConfig{} }
func (s *stubConfigManager) GetCORSConfig() types.CORSConfig       { return types.CORSConfig{} }
func (s *stubConfigManager) GetPerformanceConfig() types.PerformanceConfig {
	return types.PerformanceConfig{}
}
func (s *stubConfigManager) GetLogConfig() types.LogConfig { return types.LogConfig{Level: "info"} }
func (s *stubConfigManager) GetDatabaseConfig() types.DatabaseConfig {
	return types.DatabaseConfig{DSN: s.dsn}
}
func (s *stubConfigManager) GetCacheConfig() types.CacheConfig { return types.CacheConfig{} }
func (s *stubConfigManager) GetEffectiveServerConfig() types.ServerConfig {
	return types.ServerConfig{}
}
func (s *stubConfigManager) GetRedisDSN() string  { return "" }
func (s *stubConfigManager) Validate() error      { return nil }
func (s *stubConfigManager) DisplayServerConfig() {}
func (s *stubConfigManager) ReloadConfig() error  { return nil }

// TestNewDB_EmptyDSN tests that a missing DSN is rejected
func TestNewDB_EmptyDSN(t *testing.T) {
	t.Parallel()

	_, err := NewDB(&stubConfigManager{dsn: ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DSN")
}

// TestNewDB_SQLiteFile tests opening a SQLite database in a temp directory
func TestNewDB_SQLiteFile(t *testing.T) {
	t.Parallel()

	dsn := t.TempDir() + "/test.db"
	database, err := NewDB(&stubConfigManager{dsn: dsn})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.NoError(t, sqlDB.Ping())
	assert.Equal(t, "sqlite", database.Dialector.Name())
}
