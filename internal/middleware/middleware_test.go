package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lingo-gate/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newAuthRouter builds a router whose /api/test endpoint is auth-gated and
// reports whether the downstream handler ran.
func newAuthRouter(keys map[string]string) (*gin.Engine, *bool) {
	reached := false
	router := gin.New()
	router.Use(Auth(types.AuthConfig{Keys: keys}))
	router.GET("/api/test", func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{"identity": c.GetString(IdentityKey)})
	})
	router.GET("/health", func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})
	return router, &reached
}

// TestAuth_ValidCredentials tests the three credential transports
func TestAuth_ValidCredentials(t *testing.T) {
	keys := map[string]string{"secret-key-123456": "alice"}

	tests := []struct {
		name    string
		prepare func(req *http.Request)
	}{
		{"bearer header", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer secret-key-123456")
		}},
		{"x-api-key header", func(req *http.Request) {
			req.Header.Set("X-Api-Key", "secret-key-123456")
		}},
		{"query parameter", func(req *http.Request) {
			q := req.URL.Query()
			q.Set("key", "secret-key-123456")
			req.URL.RawQuery = q.Encode()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, reached := newAuthRouter(keys)

			req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
			tt.prepare(req)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.True(t, *reached)
			assert.Contains(t, w.Body.String(), "alice")
		})
	}
}

// TestAuth_InvalidCredentials tests rejection without reaching the handler
func TestAuth_InvalidCredentials(t *testing.T) {
	keys := map[string]string{"secret-key-123456": "alice"}

	tests := []struct {
		name    string
		prepare func(req *http.Request)
	}{
		{"no credential", func(req *http.Request) {}},
		{"wrong credential", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer wrong-key-000000")
		}},
		{"malformed authorization header", func(req *http.Request) {
			req.Header.Set("Authorization", "secret-key-123456")
		}},
		{"empty bearer token", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer ")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, reached := newAuthRouter(keys)

			req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
			tt.prepare(req)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, *reached, "handler must not run on auth failure")
			assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
		})
	}
}

// TestAuth_MultipleIdentities tests that each credential maps to its identity
func TestAuth_MultipleIdentities(t *testing.T) {
	keys := map[string]string{
		"alice-key-1234567": "alice",
		"bob-key-123456789": "bob",
	}

	router, _ := newAuthRouter(keys)

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req.Header.Set("X-Api-Key", "bob-key-123456789")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bob")
}

// TestAuth_HealthBypassesAuth tests the monitoring endpoint exemption
func TestAuth_HealthBypassesAuth(t *testing.T) {
	router, reached := newAuthRouter(map[string]string{"secret-key-123456": "alice"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}

// TestCORS_Preflight tests preflight handling
func TestCORS_Preflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS(types.CORSConfig{
		Enabled:        true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"*"},
	}))
	router.POST("/api/translate", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/translate", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

// TestCORS_Disabled tests that disabled CORS adds no headers
func TestCORS_Disabled(t *testing.T) {
	router := gin.New()
	router.Use(CORS(types.CORSConfig{Enabled: false}))
	router.GET("/api/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORS_SpecificOriginAllowed tests the explicit origin allowlist
func TestCORS_SpecificOriginAllowed(t *testing.T) {
	router := gin.New()
	router.Use(CORS(types.CORSConfig{
		Enabled:        true,
		AllowedOrigins: []string{"http://allowed.example"},
		AllowedMethods: []string{"GET"},
		AllowedHeaders: []string{"*"},
	}))
	router.GET("/api/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req.Header.Set("Origin", "http://allowed.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "http://allowed.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req.Header.Set("Origin", "http://denied.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

// TestSecurityHeaders tests the fixed security header set
func TestSecurityHeaders(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeaders())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "SAMEORIGIN", w.Header().Get("X-Frame-Options"))
}

// TestRequestID tests ID assignment and passthrough
func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Generated when absent
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// Echoed when supplied
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
}

// TestRecovery tests panic conversion to a JSON 500
func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_SERVER_ERROR")
}

// TestRateLimiter tests that requests within the bound pass
func TestRateLimiter(t *testing.T) {
	router := gin.New()
	router.Use(RateLimiter(types.PerformanceConfig{MaxConcurrentRequests: 2}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
