package chat

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/yanqian/travel-proxy/internal/infra/llm/chatgpt"
	apperrors "github.com/yanqian/travel-proxy/pkg/errors"
	"github.com/yanqian/travel-proxy/pkg/util"
)

const (
	defaultHistoryLimit  = 20
	defaultContextWindow = 10
	defaultMaxTokens     = 150
)

// Service runs multi-turn conversations against the hosted model.
type Service interface {
	Chat(ctx context.Context, req Request) (Response, error)
}

// ChatClient is the OpenAI-compatible completion API.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// SessionStore keeps per-session history. Implementations return copies.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) ([]Message, error)
	Save(ctx context.Context, sessionID string, history []Message) error
}

type service struct {
	cfg    Config
	client ChatClient
	store  SessionStore
	locks  *sessionLocks
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the chat domain.
func NewService(cfg Config, client ChatClient, store SessionStore, logger *slog.Logger) Service {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	if cfg.ContextWindow <= 0 {
		cfg.ContextWindow = defaultContextWindow
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	return &service{
		cfg:    cfg,
		client: client,
		store:  store,
		locks:  newSessionLocks(),
		logger: logger.With("component", "chat.service"),
		now:    util.NowUTC,
	}
}

func (s *service) Chat(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.Message) == "" {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "message cannot be empty", nil)
	}
	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = DefaultSessionID
	}

	if !s.configured() {
		s.logger.Warn("chat token not configured, answering offline", "session_id", sessionID)
		return s.respond(sessionID, offlineReply(req.Message)), nil
	}

	unlock, err := s.locks.acquire(ctx, sessionID)
	if err != nil {
		s.logger.Error("chat session lock failed", "session_id", sessionID, "error", err)
		return s.respond(sessionID, replyUnexpected), nil
	}
	defer unlock()

	history, err := s.store.Load(ctx, sessionID)
	if err != nil {
		s.logger.Error("chat session load failed", "session_id", sessionID, "error", err)
		return s.respond(sessionID, replyUnexpected), nil
	}

	// The turn is only persisted once the model answered.
	turn := append(history, Message{Role: RoleUser, Content: req.Message})
	completion, err := s.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model:       s.cfg.Model,
		Messages:    outboundMessages(turn, s.cfg.ContextWindow),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
		Stream:      false,
	})
	if err != nil {
		return s.respond(sessionID, s.failureReply(sessionID, err)), nil
	}

	reply := replyNoAnswer
	if len(completion.Choices) > 0 {
		reply = strings.TrimSpace(completion.Choices[0].Message.Content)
	}

	turn = append(turn, Message{Role: RoleAssistant, Content: reply})
	turn = trimHistory(turn, s.cfg.HistoryLimit)
	if err := s.store.Save(ctx, sessionID, turn); err != nil {
		s.logger.Error("chat session save failed", "session_id", sessionID, "error", err)
	}
	s.logger.Info("chat turn completed", "session_id", sessionID, "history", len(turn))

	return s.respond(sessionID, reply), nil
}

func (s *service) configured() bool {
	token := strings.TrimSpace(s.cfg.APIToken)
	if token == "" {
		return false
	}
	_, placeholder := placeholderTokens[token]
	return !placeholder
}

func (s *service) failureReply(sessionID string, err error) string {
	var apiErr *chatgpt.APIError
	if !errors.As(err, &apiErr) {
		s.logger.Error("chat request failed", "session_id", sessionID, "error", err)
		return replyUnexpected
	}
	s.logger.Error("chat provider error", "session_id", sessionID, "status", apiErr.StatusCode, "body", apiErr.Body)
	switch apiErr.StatusCode {
	case http.StatusUnauthorized:
		return replyInvalidToken
	case http.StatusTooManyRequests:
		return replyRateLimited
	default:
		return replyConnection
	}
}

func (s *service) respond(sessionID, reply string) Response {
	return Response{
		Reply:     reply,
		SessionID: sessionID,
		Timestamp: util.ISOTimestamp(s.now()),
	}
}

// outboundMessages maps the most recent window entries onto provider roles.
func outboundMessages(history []Message, window int) []chatgpt.Message {
	if len(history) > window {
		history = history[len(history)-window:]
	}
	out := make([]chatgpt.Message, 0, len(history))
	for _, msg := range history {
		role := RoleAssistant
		if msg.Role == RoleUser {
			role = RoleUser
		}
		out = append(out, chatgpt.Message{Role: role, Content: msg.Content})
	}
	return out
}

func trimHistory(history []Message, limit int) []Message {
	if len(history) <= limit {
		return history
	}
	trimmed := make([]Message, limit)
	copy(trimmed, history[len(history)-limit:])
	return trimmed
}
