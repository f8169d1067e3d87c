package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	app_errors "lingo-gate/internal/errors"
	"lingo-gate/internal/httpclient"
	"lingo-gate/internal/types"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

func init() {
	Register("hosted", newHostedProvider)
}

// Generation parameters for the two call shapes. Translation calls use a low
// temperature for consistent output; chat calls allow more variety.
const (
	translateTemperature = 0.3
	translateMaxTokens   = 1024
	chatTemperature      = 0.7
	chatMaxTokens        = 2048

	// hostedDefaultConfidence is reported when the backend supplies no
	// confidence metric of its own (chat-completions APIs do not).
	hostedDefaultConfidence = 0.95
)

// HostedProvider delegates translation and chat to an external
// chat-completions endpoint.
type HostedProvider struct {
	cfg    types.BackendConfig
	client *http.Client
}

func newHostedProvider(f *Factory, cfg types.BackendConfig) (Provider, error) {
	clientConfig := &httpclient.Config{
		ConnectTimeout:        cfg.ConnectTimeout,
		RequestTimeout:        cfg.RequestTimeout,
		IdleConnTimeout:       120 * time.Second,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   50,
		TLSHandshakeTimeout:   15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &HostedProvider{
		cfg:    cfg,
		client: f.clientManager.GetClient(clientConfig),
	}, nil
}

// Name returns the provider type name.
func (p *HostedProvider) Name() string {
	return "hosted"
}

// Translate asks the backend for a direct translation.
func (p *HostedProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	prompt := fmt.Sprintf(
		"Translate this text from %s to %s. Respond with ONLY the translation, no explanation:\n'%s'",
		sourceLang, targetLang, text)
	return p.completion(ctx, prompt, translateTemperature, translateMaxTokens)
}

// Chat answers a single free-form message.
func (p *HostedProvider) Chat(ctx context.Context, message string) (string, error) {
	return p.completion(ctx, message, chatTemperature, chatMaxTokens)
}

// Confidence reports the backend-supplied quality hint; the chat-completions
// API reports none, so a fixed default applies.
func (p *HostedProvider) Confidence() float64 {
	return hostedDefaultConfidence
}

// completion performs one chat-completion round trip and extracts the reply.
func (p *HostedProvider) completion(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	payload, err := buildCompletionPayload(p.cfg.Model, prompt, temperature, maxTokens)
	if err != nil {
		return "", app_errors.NewAPIError(app_errors.ErrInternalServer, fmt.Sprintf("failed to build backend payload: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", app_errors.NewAPIError(app_errors.ErrInternalServer, fmt.Sprintf("failed to create backend request: %v", err))
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		logrus.WithError(err).Warn("Backend request failed")
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", app_errors.NewAPIError(app_errors.ErrBackendUnavailable, fmt.Sprintf("failed to read backend response: %v", err))
	}

	logrus.WithFields(logrus.Fields{
		"status":  resp.StatusCode,
		"latency": time.Since(start),
	}).Debug("Backend completion finished")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", classifyStatusError(resp.StatusCode, body)
	}

	content := gjson.GetBytes(body, "choices.0.message.content")
	if !content.Exists() {
		return "", app_errors.NewAPIError(app_errors.ErrBackendUnavailable, "backend response missing completion content")
	}

	return content.String(), nil
}

// buildCompletionPayload assembles a chat-completions request body.
func buildCompletionPayload(model, prompt string, temperature float64, maxTokens int) ([]byte, error) {
	payload := `{"messages":[{"role":"user"}]}`

	payload, err := sjson.Set(payload, "model", model)
	if err != nil {
		return nil, err
	}
	payload, err = sjson.Set(payload, "messages.0.content", prompt)
	if err != nil {
		return nil, err
	}
	payload, err = sjson.Set(payload, "temperature", temperature)
	if err != nil {
		return nil, err
	}
	payload, err = sjson.Set(payload, "max_tokens", maxTokens)
	if err != nil {
		return nil, err
	}

	return []byte(payload), nil
}

// classifyTransportError maps network failures to the error taxonomy.
// Timeouts and connection errors are transient: the caller may retry.
func classifyTransportError(err error) *app_errors.APIError {
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return app_errors.NewAPIError(app_errors.ErrBackendUnavailable, "backend request timed out")
	}
	if errors.Is(err, context.Canceled) {
		return app_errors.NewAPIError(app_errors.ErrBackendUnavailable, "backend request canceled")
	}
	return app_errors.NewAPIError(app_errors.ErrBackendUnavailable, fmt.Sprintf("backend request failed: %v", err))
}

// classifyStatusError maps upstream HTTP errors to the error taxonomy.
// 4xx means the backend explicitly refused the input; anything else is
// treated as transient unavailability.
func classifyStatusError(statusCode int, body []byte) *app_errors.APIError {
	message := gjson.GetBytes(body, "error.message").String()
	if message == "" {
		message = http.StatusText(statusCode)
	}

	if statusCode >= 400 && statusCode < 500 && statusCode != http.StatusTooManyRequests {
		return app_errors.NewAPIError(app_errors.ErrBackendRejected, fmt.Sprintf("[status %d] %s", statusCode, message))
	}
	return app_errors.NewAPIError(app_errors.ErrBackendUnavailable, fmt.Sprintf("[status %d] %s", statusCode, message))
}
