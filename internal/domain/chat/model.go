package chat

// DefaultSessionID is used when a caller does not name a session.
const DefaultSessionID = "default"

// Roles stored in session history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Request captures the payload accepted by the chat endpoint.
type Request struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// Response is one conversational turn returned to the caller.
type Response struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

// Message is a stored history entry.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Config wires runtime dependencies for the chat domain.
type Config struct {
	APIToken      string
	Model         string
	MaxTokens     int
	Temperature   float32
	HistoryLimit  int
	ContextWindow int
}
