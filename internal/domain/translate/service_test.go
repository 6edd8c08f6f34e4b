package translate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/travel-proxy/pkg/errors"
)

func TestServiceTranslateSuccess(t *testing.T) {
	client := &stubClient{result: Result{TranslatedText: "xinchào", DetectedLanguage: "en"}}
	svc := NewService(client, newTestLogger())

	resp, err := svc.Translate(context.Background(), Request{Text: "hello", SourceLang: "en", TargetLang: "vi"})
	require.NoError(t, err)
	require.Equal(t, Response{
		OriginalText:   "hello",
		TranslatedText: "xinchào",
		SourceLanguage: "en",
		TargetLanguage: "vi",
	}, resp)
	require.Equal(t, "hello", client.lastText)
}

func TestServiceTranslateFallsBackToRequestedSource(t *testing.T) {
	svc := NewService(&stubClient{result: Result{TranslatedText: "hi"}}, newTestLogger())

	resp, err := svc.Translate(context.Background(), Request{Text: "chào", SourceLang: "vi", TargetLang: "en"})
	require.NoError(t, err)
	require.Equal(t, "vi", resp.SourceLanguage)
	require.Equal(t, "en", resp.TargetLanguage)
}

func TestServiceTranslateRejectsEmptyText(t *testing.T) {
	client := &stubClient{}
	svc := NewService(client, newTestLogger())

	_, err := svc.Translate(context.Background(), Request{Text: "   ", SourceLang: "en", TargetLang: "vi"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
	require.Zero(t, client.calls)
}

func TestServiceTranslateUpstreamFailure(t *testing.T) {
	svc := NewService(&stubClient{err: errors.New("boom")}, newTestLogger())

	_, err := svc.Translate(context.Background(), Request{Text: "hello", SourceLang: "en", TargetLang: "vi"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeUpstream))
	require.Contains(t, err.Error(), "translation failed")
}

type stubClient struct {
	result   Result
	err      error
	calls    int
	lastText string
}

func (s *stubClient) Translate(_ context.Context, text, _, _ string) (Result, error) {
	s.calls++
	s.lastText = text
	return s.result, s.err
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
