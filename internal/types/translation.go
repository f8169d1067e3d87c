package types

// Translation modes supported by the gateway.
const (
	ModeSimple = "simple"
	ModeChain  = "chain"
)

// TranslateRequest is a single-text translation request.
type TranslateRequest struct {
	Text       string `json:"text" binding:"required"`
	SourceLang string `json:"source_lang" binding:"required"`
	TargetLang string `json:"target_lang" binding:"required"`
	Mode       string `json:"mode"`
}

// BatchTranslateRequest is an ordered multi-text translation request.
// The response preserves input order: translations[i] corresponds to texts[i].
type BatchTranslateRequest struct {
	Texts      []string `json:"texts" binding:"required"`
	SourceLang string   `json:"source_lang" binding:"required"`
	TargetLang string   `json:"target_lang" binding:"required"`
	Mode       string   `json:"mode"`
}

// TranslationResult is the outcome of one successful translation.
// It is created once per item and never mutated afterwards.
type TranslationResult struct {
	Original     string  `json:"original"`
	Translation  string  `json:"translation"`
	SourceLang   string  `json:"source_lang"`
	TargetLang   string  `json:"target_lang"`
	Confidence   float64 `json:"confidence"`
	Mode         string  `json:"mode"`
	DetectedLang string  `json:"detected_lang,omitempty"`
}

// BatchItemResult is one outcome slot of a batch translation. Exactly one of
// Translation or Error is meaningful; Error is empty on success.
type BatchItemResult struct {
	Original    string `json:"original"`
	Translation string `json:"translation,omitempty"`
	Error       string `json:"error,omitempty"`
}

// BatchTranslateResponse is the assembled response of a batch request.
type BatchTranslateResponse struct {
	Count        int               `json:"count"`
	SourceLang   string            `json:"source_lang"`
	TargetLang   string            `json:"target_lang"`
	Translations []BatchItemResult `json:"translations"`
}

// ChatRequest is a stateless single-turn chat request.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the chat reply payload.
type ChatResponse struct {
	Response  string `json:"response"`
	Model     string `json:"model"`
	Timestamp string `json:"timestamp"`
}

// ChainIntermediate records the four prompt-chain stage outputs for one
// in-flight chain invocation. It is owned exclusively by the executing call
// stack and discarded when the call returns.
type ChainIntermediate struct {
	DetectedLanguage   string
	ExtractedMeaning   string
	DraftTranslation   string
	RefinedTranslation string
}

// Language describes one entry of the static supported-language table.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ModelInfo describes one entry of the static backend model catalog.
type ModelInfo struct {
	Name        string `json:"name"`
	Provider    string `json:"provider"`
	Context     string `json:"context"`
	Description string `json:"description"`
}
