package locales

// MessagesJaJP Japanese translations
var MessagesJaJP = map[string]string{
	// Common messages
	"success":        "操作が成功しました",
	"common.success": "成功",
	"error":          "操作が失敗しました",
	"unauthorized":   "認証されていません",
	"bad_request":    "不正なリクエスト",
	"internal_error": "内部エラー",

	// Authentication related
	"auth.invalid_key":  "無効な認証キー",
	"auth.key_required": "認証キーが必要です",

	// Translation related
	"translate.success":        "翻訳が完了しました",
	"translate.batch_success":  "一括翻訳が完了しました",
	"translate.empty_text":     "テキストを入力してください",
	"translate.empty_batch":    "テキストリストを入力してください",
	"translate.invalid_mode":   "認識できない翻訳モード",
	"translate.backend_down":   "翻訳バックエンドが利用できません",
	"translate.chain_failed":   "プロンプトチェーンがステージ {{.Stage}} で失敗しました",
	"translate.languages":      "対応言語",
	"translate.models":         "利用可能なモデル",

	// Chat related
	"chat.success":       "チャットが完了しました",
	"chat.empty_message": "メッセージを入力してください",
}
