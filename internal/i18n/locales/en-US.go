package locales

// MessagesEnUS English (US) translations
var MessagesEnUS = map[string]string{
	// Common messages
	"success":        "Operation successful",
	"common.success": "Success",
	"error":          "Operation failed",
	"unauthorized":   "Unauthorized",
	"bad_request":    "Bad request",
	"internal_error": "Internal error",

	// Authentication related
	"auth.invalid_key":  "Invalid authorization key",
	"auth.key_required": "Authorization key required",

	// Translation related
	"translate.success":        "Translation completed",
	"translate.batch_success":  "Batch translation completed",
	"translate.empty_text":     "Text cannot be empty",
	"translate.empty_batch":    "Texts list cannot be empty",
	"translate.invalid_mode":   "Unrecognized translation mode",
	"translate.backend_down":   "Translation backend is unavailable",
	"translate.chain_failed":   "Prompt chain failed at stage {{.Stage}}",
	"translate.languages":      "Supported languages",
	"translate.models":         "Available models",

	// Chat related
	"chat.success":       "Chat completed",
	"chat.empty_message": "Message cannot be empty",
}
