// Package backend defines the pluggable translation/chat provider boundary.
// Providers are registered by type name and constructed by a Factory, so new
// backends plug in without modifying the router or the strategies.
package backend

import (
	"context"
	"fmt"
	"sync"

	"lingo-gate/internal/httpclient"
	"lingo-gate/internal/types"

	"github.com/sirupsen/logrus"
)

// Provider is the delegated translation/chat capability behind the gateway.
// Implementations must not hold per-request mutable state; a single Provider
// instance is shared across concurrently handled requests.
type Provider interface {
	// Name returns the provider type name.
	Name() string

	// Translate converts text from sourceLang to targetLang.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)

	// Chat answers a single free-form message.
	Chat(ctx context.Context, message string) (string, error)

	// Confidence reports the provider's quality hint for its outputs, in
	// [0,1]. It is an opaque hint, not a calibrated probability.
	Confidence() float64
}

// providerConstructor defines the function signature for creating a provider.
type providerConstructor func(f *Factory, cfg types.BackendConfig) (Provider, error)

var (
	// providerRegistry holds the mapping from backend type to its constructor.
	providerRegistry = make(map[string]providerConstructor)
)

// Register adds a new provider constructor to the registry.
func Register(backendType string, constructor providerConstructor) {
	if _, exists := providerRegistry[backendType]; exists {
		panic(fmt.Sprintf("backend type '%s' is already registered", backendType))
	}
	providerRegistry[backendType] = constructor
}

// GetProviderTypes returns a slice of all registered backend type names.
func GetProviderTypes() []string {
	supportedTypes := make([]string, 0, len(providerRegistry))
	for t := range providerRegistry {
		supportedTypes = append(supportedTypes, t)
	}
	return supportedTypes
}

// Factory constructs and caches the configured provider.
type Factory struct {
	configManager types.ConfigManager
	clientManager *httpclient.Manager

	mu       sync.Mutex
	provider Provider
}

// NewFactory creates a new provider factory.
func NewFactory(configManager types.ConfigManager, clientManager *httpclient.Manager) *Factory {
	return &Factory{
		configManager: configManager,
		clientManager: clientManager,
	}
}

// GetProvider returns the provider for the configured backend type.
// The provider is constructed once and reused; backend configuration is
// immutable for the process lifetime.
func (f *Factory) GetProvider() (Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.provider != nil {
		return f.provider, nil
	}

	cfg := f.configManager.GetBackendConfig()
	constructor, found := providerRegistry[cfg.Type]
	if !found {
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}

	provider, err := constructor(f, cfg)
	if err != nil {
		return nil, err
	}

	logrus.Debugf("Created backend provider '%s'", cfg.Type)
	f.provider = provider
	return provider, nil
}
