package locales

// MessagesZhCN Chinese (Simplified) translations
var MessagesZhCN = map[string]string{
	// Common messages
	"success":        "操作成功",
	"common.success": "成功",
	"error":          "操作失败",
	"unauthorized":   "未授权",
	"bad_request":    "请求错误",
	"internal_error": "内部错误",

	// Authentication related
	"auth.invalid_key":  "无效的授权密钥",
	"auth.key_required": "需要授权密钥",

	// Translation related
	"translate.success":        "翻译完成",
	"translate.batch_success":  "批量翻译完成",
	"translate.empty_text":     "文本不能为空",
	"translate.empty_batch":    "文本列表不能为空",
	"translate.invalid_mode":   "无法识别的翻译模式",
	"translate.backend_down":   "翻译后端不可用",
	"translate.chain_failed":   "提示链在第 {{.Stage}} 阶段失败",
	"translate.languages":      "支持的语言",
	"translate.models":         "可用模型",

	// Chat related
	"chat.success":       "对话完成",
	"chat.empty_message": "消息不能为空",
}
