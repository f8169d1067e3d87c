// Package config loads and validates process configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"lingo-gate/internal/types"
	"lingo-gate/internal/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Backend types supported by the gateway.
const (
	BackendTypeMock   = "mock"
	BackendTypeHosted = "hosted"
)

// DefaultIdentity is assigned to credentials configured without an explicit
// identity label.
const DefaultIdentity = "user"

// Manager implements types.ConfigManager backed by environment variables.
// All configuration is resolved once at startup and is immutable afterwards.
type Manager struct {
	serverConfig      types.ServerConfig
	authConfig        types.AuthConfig
	backendConfig     types.BackendConfig
	corsConfig        types.CORSConfig
	performanceConfig types.PerformanceConfig
	logConfig         types.LogConfig
	databaseConfig    types.DatabaseConfig
	cacheConfig       types.CacheConfig
	redisDSN          string
}

// NewManager creates a new configuration manager from the environment.
func NewManager() (*Manager, error) {
	// Load .env file if it exists; environment variables take precedence.
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables only")
	}

	m := &Manager{}
	if err := m.ReloadConfig(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// ReloadConfig re-reads all configuration values from the environment.
func (m *Manager) ReloadConfig() error {
	m.serverConfig = types.ServerConfig{
		Port:                    utils.ParseInteger(utils.GetEnvOrDefault("PORT", "3001"), 3001),
		Host:                    utils.GetEnvOrDefault("HOST", "0.0.0.0"),
		ReadTimeout:             utils.ParseInteger(utils.GetEnvOrDefault("SERVER_READ_TIMEOUT", "60"), 60),
		WriteTimeout:            utils.ParseInteger(utils.GetEnvOrDefault("SERVER_WRITE_TIMEOUT", "600"), 600),
		IdleTimeout:             utils.ParseInteger(utils.GetEnvOrDefault("SERVER_IDLE_TIMEOUT", "120"), 120),
		GracefulShutdownTimeout: utils.ParseInteger(utils.GetEnvOrDefault("SERVER_GRACEFUL_SHUTDOWN_TIMEOUT", "10"), 10),
	}

	m.authConfig = types.AuthConfig{
		Keys: parseAuthKeys(utils.GetEnvOrDefault("AUTH_KEYS", "")),
	}

	m.backendConfig = types.BackendConfig{
		Type:           utils.GetEnvOrDefault("BACKEND_TYPE", BackendTypeMock),
		BaseURL:        utils.GetEnvOrDefault("BACKEND_BASE_URL", "https://api.groq.com/openai/v1"),
		APIKey:         utils.GetEnvOrDefault("BACKEND_API_KEY", ""),
		Model:          utils.GetEnvOrDefault("BACKEND_MODEL", "llama-3.1-8b-instant"),
		RequestTimeout: utils.ParseDurationSeconds(utils.GetEnvOrDefault("BACKEND_REQUEST_TIMEOUT", "60"), 60*time.Second),
		ConnectTimeout: utils.ParseDurationSeconds(utils.GetEnvOrDefault("BACKEND_CONNECT_TIMEOUT", "15"), 15*time.Second),
	}

	m.corsConfig = types.CORSConfig{
		Enabled:          utils.ParseBoolean(utils.GetEnvOrDefault("ENABLE_CORS", "true"), true),
		AllowedOrigins:   utils.SplitAndTrim(utils.GetEnvOrDefault("ALLOWED_ORIGINS", "*"), ","),
		AllowedMethods:   utils.SplitAndTrim(utils.GetEnvOrDefault("ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS"), ","),
		AllowedHeaders:   utils.SplitAndTrim(utils.GetEnvOrDefault("ALLOWED_HEADERS", "*"), ","),
		AllowCredentials: utils.ParseBoolean(utils.GetEnvOrDefault("ALLOW_CREDENTIALS", "false"), false),
	}

	m.performanceConfig = types.PerformanceConfig{
		MaxConcurrentRequests: utils.ParseInteger(utils.GetEnvOrDefault("MAX_CONCURRENT_REQUESTS", "100"), 100),
		BatchConcurrency:      utils.ParseInteger(utils.GetEnvOrDefault("BATCH_CONCURRENCY", "8"), 8),
	}

	m.logConfig = types.LogConfig{
		Level:      utils.GetEnvOrDefault("LOG_LEVEL", "info"),
		Format:     utils.GetEnvOrDefault("LOG_FORMAT", "text"),
		EnableFile: utils.ParseBoolean(utils.GetEnvOrDefault("LOG_ENABLE_FILE", "false"), false),
		FilePath:   utils.GetEnvOrDefault("LOG_FILE_PATH", "./data/logs/app.log"),
	}

	m.databaseConfig = types.DatabaseConfig{
		DSN: utils.GetEnvOrDefault("DATABASE_DSN", "./data/lingo-gate.db"),
	}

	m.cacheConfig = types.CacheConfig{
		Enabled: utils.ParseBoolean(utils.GetEnvOrDefault("TRANSLATION_CACHE_ENABLED", "true"), true),
		TTL:     utils.ParseDurationSeconds(utils.GetEnvOrDefault("TRANSLATION_CACHE_TTL", "3600"), time.Hour),
	}

	m.redisDSN = utils.GetEnvOrDefault("REDIS_DSN", "")

	return nil
}

// parseAuthKeys parses the AUTH_KEYS environment variable. Each entry is
// either "credential:identity" or a bare credential, separated by commas.
func parseAuthKeys(raw string) map[string]string {
	keys := make(map[string]string)
	for _, entry := range utils.SplitAndTrim(raw, ",") {
		credential, identity, found := strings.Cut(entry, ":")
		credential = strings.TrimSpace(credential)
		if credential == "" {
			continue
		}
		if !found || strings.TrimSpace(identity) == "" {
			keys[credential] = DefaultIdentity
			continue
		}
		keys[credential] = strings.TrimSpace(identity)
	}
	return keys
}

// Validate checks that the loaded configuration is usable.
func (m *Manager) Validate() error {
	if m.serverConfig.Port < 1 || m.serverConfig.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", m.serverConfig.Port)
	}
	if len(m.authConfig.Keys) == 0 {
		return fmt.Errorf("AUTH_KEYS must configure at least one credential")
	}
	for credential := range m.authConfig.Keys {
		if len(credential) < 8 {
			return fmt.Errorf("credential %s is too short, minimum 8 characters", utils.MaskCredential(credential))
		}
	}
	switch m.backendConfig.Type {
	case BackendTypeMock:
	case BackendTypeHosted:
		if m.backendConfig.APIKey == "" {
			return fmt.Errorf("BACKEND_API_KEY is required when BACKEND_TYPE is %q", BackendTypeHosted)
		}
		if m.backendConfig.BaseURL == "" {
			return fmt.Errorf("BACKEND_BASE_URL is required when BACKEND_TYPE is %q", BackendTypeHosted)
		}
	default:
		return fmt.Errorf("unsupported BACKEND_TYPE: %s", m.backendConfig.Type)
	}
	if m.performanceConfig.MaxConcurrentRequests < 1 {
		return fmt.Errorf("MAX_CONCURRENT_REQUESTS must be at least 1")
	}
	if m.performanceConfig.BatchConcurrency < 1 {
		return fmt.Errorf("BATCH_CONCURRENCY must be at least 1")
	}
	return nil
}

// GetAuthConfig returns authentication configuration
func (m *Manager) GetAuthConfig() types.AuthConfig {
	return m.authConfig
}

// GetBackendConfig returns translation backend configuration
func (m *Manager) GetBackendConfig() types.BackendConfig {
	return m.backendConfig
}

// GetCORSConfig returns CORS configuration
func (m *Manager) GetCORSConfig() types.CORSConfig {
	return m.corsConfig
}

// GetPerformanceConfig returns performance configuration
func (m *Manager) GetPerformanceConfig() types.PerformanceConfig {
	return m.performanceConfig
}

// GetLogConfig returns logging configuration
func (m *Manager) GetLogConfig() types.LogConfig {
	return m.logConfig
}

// GetDatabaseConfig returns database configuration
func (m *Manager) GetDatabaseConfig() types.DatabaseConfig {
	return m.databaseConfig
}

// GetCacheConfig returns translation cache configuration
func (m *Manager) GetCacheConfig() types.CacheConfig {
	return m.cacheConfig
}

// GetEffectiveServerConfig returns server configuration
func (m *Manager) GetEffectiveServerConfig() types.ServerConfig {
	return m.serverConfig
}

// GetRedisDSN returns the Redis connection string, empty when unset.
func (m *Manager) GetRedisDSN() string {
	return m.redisDSN
}

// DisplayServerConfig logs an overview of the effective configuration.
func (m *Manager) DisplayServerConfig() {
	logrus.Info("Server configuration:")
	logrus.Infof("  Listen address: %s:%d", m.serverConfig.Host, m.serverConfig.Port)
	logrus.Infof("  Configured credentials: %d", len(m.authConfig.Keys))
	logrus.Infof("  Backend: %s (model: %s, timeout: %v)", m.backendConfig.Type, m.backendConfig.Model, m.backendConfig.RequestTimeout)
	logrus.Infof("  Translation cache: enabled=%v ttl=%v", m.cacheConfig.Enabled, m.cacheConfig.TTL)
	logrus.Infof("  Max concurrent requests: %d, batch concurrency: %d", m.performanceConfig.MaxConcurrentRequests, m.performanceConfig.BatchConcurrency)
	if m.redisDSN != "" {
		logrus.Info("  Cache store: redis")
	} else {
		logrus.Info("  Cache store: memory")
	}
}
