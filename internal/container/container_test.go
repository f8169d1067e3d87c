package container

import (
	"testing"

	"lingo-gate/internal/backend"
	"lingo-gate/internal/services"
	"lingo-gate/internal/store"
	"lingo-gate/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnv sets up test environment variables
func setupTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AUTH_KEYS", "test-auth-key-minimum-16-chars")
	t.Setenv("DATABASE_DSN", ":memory:")
	t.Setenv("PORT", "3001")
}

// TestBuildContainer tests container creation
func TestBuildContainer(t *testing.T) {
	setupTestEnv(t)

	container, err := BuildContainer()
	require.NoError(t, err)
	require.NotNil(t, container)
}

// TestBuildContainer_ConfigManagerResolution tests config manager resolution
func TestBuildContainer_ConfigManagerResolution(t *testing.T) {
	setupTestEnv(t)

	container, err := BuildContainer()
	require.NoError(t, err)

	var configManager types.ConfigManager
	err = container.Invoke(func(cm types.ConfigManager) {
		configManager = cm
	})
	require.NoError(t, err)
	assert.NotNil(t, configManager)
}

// TestBuildContainer_Singleton tests that resolved services are singletons
func TestBuildContainer_Singleton(t *testing.T) {
	setupTestEnv(t)

	container, err := BuildContainer()
	require.NoError(t, err)

	var cm1, cm2 types.ConfigManager
	require.NoError(t, container.Invoke(func(cm types.ConfigManager) { cm1 = cm }))
	require.NoError(t, container.Invoke(func(cm types.ConfigManager) { cm2 = cm }))
	assert.Same(t, cm1, cm2)
}

// TestBuildContainer_CoreServices tests resolution of the service graph up to
// the translation service
func TestBuildContainer_CoreServices(t *testing.T) {
	setupTestEnv(t)

	container, err := BuildContainer()
	require.NoError(t, err)

	err = container.Invoke(func(
		cm types.ConfigManager,
		storage store.Store,
		factory *backend.Factory,
		translationService *services.TranslationService,
	) {
		assert.NotNil(t, cm)
		assert.NotNil(t, storage)
		assert.NotNil(t, factory)
		assert.NotNil(t, translationService)
	})
	require.NoError(t, err)
}

// TestBuildContainer_ConfigValues tests environment propagation through dig
func TestBuildContainer_ConfigValues(t *testing.T) {
	setupTestEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("BATCH_CONCURRENCY", "2")

	container, err := BuildContainer()
	require.NoError(t, err)

	err = container.Invoke(func(cm types.ConfigManager) {
		assert.Equal(t, 8080, cm.GetEffectiveServerConfig().Port)
		assert.Equal(t, 2, cm.GetPerformanceConfig().BatchConcurrency)
	})
	require.NoError(t, err)
}
