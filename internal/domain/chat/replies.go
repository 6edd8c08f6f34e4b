package chat

import "fmt"

// Canned replies returned instead of errors so the conversation never breaks.
const (
	replyNoAnswer     = "Xin lỗi, tôi không thể trả lời lúc này."
	replyConnection   = "Xin lỗi, tôi gặp sự cố khi kết nối với AI. Vui lòng thử lại sau."
	replyInvalidToken = "API token không hợp lệ. Vui lòng kiểm tra cấu hình."
	replyRateLimited  = "Quá nhiều yêu cầu. Vui lòng thử lại sau."
	replyUnexpected   = "Xin lỗi, có lỗi xảy ra. Vui lòng thử lại."
)

var placeholderTokens = map[string]struct{}{
	"YOUR_NEW_HUGGINGFACE_TOKEN_HERE": {},
	"YOUR_HUGGINGFACE_TOKEN_HERE":     {},
}

func offlineReply(message string) string {
	return fmt.Sprintf("Chat bot chưa được cấu hình. Câu hỏi: '%s'", message)
}
