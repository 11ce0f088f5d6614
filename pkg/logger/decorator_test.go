package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/personsvc/pkg/logger"
)

type ctxKey struct{}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return slog.String("request_id", v), true
	}
	return slog.Attr{}, false
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogHandlerDecorator(t *testing.T) {
	t.Parallel()

	t.Run("adds extracted attributes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), requestIDExtractor))

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "hello")

		entry := decode(t, &buf)
		require.Equal(t, "hello", entry["msg"])
		require.Equal(t, "req-1", entry["request_id"])
	})

	t.Run("skips missing values", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), requestIDExtractor))

		log.InfoContext(context.Background(), "hello")

		entry := decode(t, &buf)
		require.NotContains(t, entry, "request_id")
	})

	t.Run("nil extractors are ignored", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), nil, requestIDExtractor))

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-2")
		require.NotPanics(t, func() { log.InfoContext(ctx, "hello") })
		require.Equal(t, "req-2", decode(t, &buf)["request_id"])
	})

	t.Run("keeps extractors across With", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), requestIDExtractor)).
			With(slog.String("component", "http"))

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-3")
		log.InfoContext(ctx, "hello")

		entry := decode(t, &buf)
		require.Equal(t, "http", entry["component"])
		require.Equal(t, "req-3", entry["request_id"])
	})
}

func TestLogHandlerDecoratorKeepsExplicitAttr(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), requestIDExtractor))

	ctx := context.WithValue(context.Background(), ctxKey{}, "from-ctx")
	log.InfoContext(ctx, "hello", slog.String("request_id", "explicit"))

	require.Equal(t, 1, bytes.Count(buf.Bytes(), []byte(`"request_id"`)))
	require.Equal(t, "explicit", decode(t, &buf)["request_id"])
}

type failingHandler struct{ err error }

func (h failingHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h failingHandler) Handle(context.Context, slog.Record) error { return h.err }
func (h failingHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h failingHandler) WithGroup(string) slog.Handler             { return h }

func TestFanoutHandler(t *testing.T) {
	t.Parallel()

	t.Run("writes to every enabled handler", func(t *testing.T) {
		t.Parallel()
		var info, warn bytes.Buffer
		h := logger.NewFanoutHandler(
			slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
			slog.NewJSONHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
		)
		log := slog.New(h).With(slog.String("component", "test"))

		log.Info("only info")
		require.Equal(t, "only info", decode(t, &info)["msg"])
		require.Zero(t, warn.Len())

		info.Reset()
		log.Warn("both")
		require.Equal(t, "test", decode(t, &info)["component"])
		require.Equal(t, "both", decode(t, &warn)["msg"])
	})

	t.Run("keeps going after a failing handler", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		var buf bytes.Buffer
		h := logger.NewFanoutHandler(failingHandler{err: boom}, slog.NewJSONHandler(&buf, nil))

		err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0))
		require.ErrorIs(t, err, boom)
		require.Equal(t, "hello", decode(t, &buf)["msg"])
	})

	t.Run("disabled when no handler is enabled", func(t *testing.T) {
		t.Parallel()
		h := logger.NewFanoutHandler(slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
		require.False(t, h.Enabled(context.Background(), slog.LevelWarn))
	})
}

func TestSentryLevels(t *testing.T) {
	t.Parallel()
	require.Equal(t, []slog.Level{slog.LevelWarn, slog.LevelError}, logger.SentryLevels(slog.LevelWarn))
	require.Equal(t, []slog.Level{slog.LevelError}, logger.SentryLevels(slog.Level(42)))
}

func TestNope(t *testing.T) {
	t.Parallel()
	log := logger.NewNope()
	require.NotNil(t, log)
	require.NotPanics(t, func() { log.Error("discarded") })
}
