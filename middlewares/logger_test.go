package middlewares_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/personsvc/internal"
	"github.com/dmitrymomot/personsvc/middlewares"
)

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, h internal.HandlerFunc) string {
		t.Helper()
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		c := internal.NewContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/get", nil), log)
		_, _ = middlewares.RequestLogger()(h)(c)
		return buf.String()
	}

	t.Run("success uses outcome status", func(t *testing.T) {
		t.Parallel()
		out := run(t, func(internal.Context) (internal.Outcome, error) {
			return internal.JSONPayload(), nil
		})
		assert.Contains(t, out, `"level":"INFO"`)
		assert.Contains(t, out, `"status":200`)
		assert.Contains(t, out, `"path":"/get"`)
		assert.Contains(t, out, `"method":"GET"`)
		assert.Contains(t, out, `"duration"`)
	})

	t.Run("failure uses failure status", func(t *testing.T) {
		t.Parallel()
		out := run(t, func(internal.Context) (internal.Outcome, error) {
			return internal.Outcome{}, internal.ErrForbidden(nil)
		})
		assert.Contains(t, out, `"level":"WARN"`)
		assert.Contains(t, out, `"status":403`)
	})

	t.Run("plain error is a server error", func(t *testing.T) {
		t.Parallel()
		out := run(t, func(internal.Context) (internal.Outcome, error) {
			return internal.Outcome{}, assert.AnError
		})
		assert.Contains(t, out, `"level":"ERROR"`)
		assert.Contains(t, out, `"status":500`)
	})

	t.Run("written response status wins", func(t *testing.T) {
		t.Parallel()
		out := run(t, func(c internal.Context) (internal.Outcome, error) {
			require.NoError(t, c.NoContent(http.StatusCreated))
			return internal.Outcome{}, nil
		})
		assert.Contains(t, out, `"status":201`)
	})
}
