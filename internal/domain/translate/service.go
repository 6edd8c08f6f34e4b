package translate

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/travel-proxy/pkg/errors"
)

// Service exposes text translation.
type Service interface {
	Translate(ctx context.Context, req Request) (Response, error)
}

// Client is implemented by translation providers.
type Client interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (Result, error)
}

type service struct {
	client Client
	logger *slog.Logger
}

// NewService wires up the translation domain.
func NewService(client Client, logger *slog.Logger) Service {
	return &service{client: client, logger: logger.With("component", "translate.service")}
}

func (s *service) Translate(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.Text) == "" {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "text cannot be empty", nil)
	}
	source := strings.TrimSpace(req.SourceLang)
	target := strings.TrimSpace(req.TargetLang)
	if source == "" || target == "" {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "source_lang and target_lang are required", nil)
	}

	result, err := s.client.Translate(ctx, req.Text, source, target)
	if err != nil {
		s.logger.Error("translation failed", "source", source, "target", target, "error", err)
		return Response{}, apperrors.Wrap(apperrors.CodeUpstream, "translation failed", err)
	}

	detected := result.DetectedLanguage
	if detected == "" {
		detected = source
	}
	return Response{
		OriginalText:   req.Text,
		TranslatedText: result.TranslatedText,
		SourceLanguage: detected,
		// the caller's target wins even if the provider reports another one
		TargetLanguage: target,
	}, nil
}
