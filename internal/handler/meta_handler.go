package handler

import (
	"net/http"
	"time"

	"lingo-gate/internal/response"
	"lingo-gate/internal/types"
	"lingo-gate/internal/version"

	"github.com/gin-gonic/gin"
)

// supportedLanguages is the static table returned by GET /api/languages.
// The gateway itself does not restrict translation to this table; it is
// advertised as the set of codes the backends handle well.
var supportedLanguages = []types.Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "zh", Name: "Chinese"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ru", Name: "Russian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "it", Name: "Italian"},
	{Code: "ar", Name: "Arabic"},
	{Code: "hi", Name: "Hindi"},
	{Code: "bn", Name: "Bengali"},
	{Code: "te", Name: "Telugu"},
	{Code: "kn", Name: "Kannada"},
	{Code: "ta", Name: "Tamil"},
	{Code: "tr", Name: "Turkish"},
	{Code: "vi", Name: "Vietnamese"},
	{Code: "th", Name: "Thai"},
	{Code: "ko", Name: "Korean"},
	{Code: "pl", Name: "Polish"},
}

// modelCatalog is the static table returned by GET /api/models.
var modelCatalog = []types.ModelInfo{
	{Name: "llama-3.1-8b-instant", Provider: "groq", Context: "128K", Description: "Fast general-purpose model, default for translation"},
	{Name: "llama-3.3-70b-versatile", Provider: "groq", Context: "128K", Description: "Larger model for higher-quality output"},
	{Name: "gemma2-9b-it", Provider: "groq", Context: "8K", Description: "Lightweight instruction-tuned model"},
}

// Health handles GET /health. It is unauthenticated and reports process
// liveness only; it never calls the translation backend.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   version.Version,
		"uptime":    time.Since(s.startTime).Round(time.Second).String(),
		"backend":   s.configManager.GetBackendConfig().Type,
	})
}

// ListLanguages handles GET /api/languages.
func (s *Server) ListLanguages(c *gin.Context) {
	response.SuccessI18n(c, "translate.languages", gin.H{
		"count":     len(supportedLanguages),
		"languages": supportedLanguages,
	})
}

// ListModels handles GET /api/models.
func (s *Server) ListModels(c *gin.Context) {
	response.SuccessI18n(c, "translate.models", gin.H{
		"count":  len(modelCatalog),
		"models": modelCatalog,
	})
}

// ServiceInfo handles GET /. It is a public service descriptor for humans
// poking at the root path.
func (s *Server) ServiceInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "lingo-gate",
		"version": version.Version,
		"endpoints": gin.H{
			"translate":       "POST /api/translate",
			"translate_batch": "POST /api/translate/batch",
			"chat":            "POST /api/chat",
			"languages":       "GET /api/languages",
			"models":          "GET /api/models",
			"health":          "GET /health",
		},
	})
}
