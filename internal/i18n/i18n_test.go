package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// TestInit tests bundle initialization
func TestInit(t *testing.T) {
	require.NoError(t, Init())
}

// TestNormalizeLanguageCode tests loose tag mapping
func TestNormalizeLanguageCode(t *testing.T) {
	require.NoError(t, Init())

	tests := []struct {
		input    string
		expected string
	}{
		{"zh", "zh-CN"},
		{"zh-TW", "zh-CN"},
		{"ja", "ja-JP"},
		{"en-GB", "en-US"},
		{"en-US,en;q=0.9", "en-US"},
		{"fr", "en-US"},
		{"", "en-US"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeLanguageCode(tt.input))
		})
	}
}

// TestT_Translation tests message lookup per locale
func TestT_Translation(t *testing.T) {
	require.NoError(t, Init())

	enMsg := T(GetLocalizer("en-US"), "common.success")
	zhMsg := T(GetLocalizer("zh-CN"), "common.success")

	assert.Equal(t, "Success", enMsg)
	assert.NotEmpty(t, zhMsg)
	assert.NotEqual(t, enMsg, zhMsg)
}

// TestT_UnknownIDFallsBackToID tests the missing-message fallback
func TestT_UnknownIDFallsBackToID(t *testing.T) {
	require.NoError(t, Init())

	assert.Equal(t, "no.such.message", T(GetLocalizer("en-US"), "no.such.message"))
}

// TestT_TemplateData tests template interpolation
func TestT_TemplateData(t *testing.T) {
	require.NoError(t, Init())

	msg := T(GetLocalizer("en-US"), "translate.chain_failed", map[string]any{"Stage": 3})
	assert.Contains(t, msg, "3")
}

// TestMiddleware tests localizer installation into the request context
func TestMiddleware(t *testing.T) {
	require.NoError(t, Init())

	router := gin.New()
	router.Use(Middleware())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "%s|%s", GetLangFromContext(c), Message(c, "common.success"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "ja-JP")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ja-JP|")
}

// TestGetLocalizerFromContext_MissingLocalizer tests the fallback localizer
func TestGetLocalizerFromContext_MissingLocalizer(t *testing.T) {
	require.NoError(t, Init())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	localizer := GetLocalizerFromContext(c)
	require.NotNil(t, localizer)
	assert.Equal(t, "Success", T(localizer, "common.success"))
}
