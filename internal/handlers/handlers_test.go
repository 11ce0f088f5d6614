package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/personsvc/internal"
	"github.com/dmitrymomot/personsvc/internal/handlers"
	"github.com/dmitrymomot/personsvc/internal/store"
	"github.com/dmitrymomot/personsvc/internal/view"
)

type fakeStore struct {
	mu        sync.Mutex
	persons   []store.Person
	insertErr error
	selectErr error
}

func (s *fakeStore) Insert(_ context.Context, p store.Person) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persons = append(s.persons, p)
	return nil
}

func (s *fakeStore) SelectAll(context.Context) ([]store.Person, error) {
	if s.selectErr != nil {
		return nil, s.selectErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]store.Person(nil), s.persons...), nil
}

type fakeRenderer struct {
	out string
	err error
}

func (r fakeRenderer) Render(string, view.Content) (string, error) {
	return r.out, r.err
}

func serve(t *testing.T, h internal.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	app := internal.New(internal.WithHandlers(h))
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func decodeMessages(t *testing.T, rec *httptest.ResponseRecorder) []internal.Message {
	t.Helper()
	var msgs []internal.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msgs))
	return msgs
}

func TestMessages_OnState(t *testing.T) {
	t.Parallel()

	rec := serve(t, handlers.NewMessages(), "/on_state")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"message":"Hello messaged world"}]`, rec.Body.String())
}

func TestPersons(t *testing.T) {
	t.Parallel()

	t.Run("insert then list", func(t *testing.T) {
		t.Parallel()
		st := &fakeStore{}
		h := handlers.NewPersons(st)

		rec := serve(t, h, "/insert")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())

		rec = serve(t, h, "/get")
		assert.Equal(t, http.StatusOK, rec.Code)
		msgs := decodeMessages(t, rec)
		require.Len(t, msgs, 1)
		assert.Equal(t, "Retrieved persons: [{Name:TestName Number:123567}]", msgs[0].Message)
	})

	t.Run("list empty", func(t *testing.T) {
		t.Parallel()
		rec := serve(t, handlers.NewPersons(&fakeStore{}), "/get")
		assert.Equal(t, http.StatusOK, rec.Code)
		msgs := decodeMessages(t, rec)
		require.Len(t, msgs, 1)
		assert.Equal(t, "Retrieved persons: []", msgs[0].Message)
	})

	t.Run("insert failure is 500 with empty body", func(t *testing.T) {
		t.Parallel()
		rec := serve(t, handlers.NewPersons(&fakeStore{insertErr: store.ErrInsert}), "/insert")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("select failure is 500", func(t *testing.T) {
		t.Parallel()
		rec := serve(t, handlers.NewPersons(&fakeStore{selectErr: store.ErrSelect}), "/get")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestFormatPersons(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Retrieved persons: []", handlers.FormatPersons(nil))
	assert.Equal(t,
		"Retrieved persons: [{Name:a Number:1} {Name:b Number:2}]",
		handlers.FormatPersons([]store.Person{{Name: "a", Number: 1}, {Name: "b", Number: 2}}),
	)
}

func TestPages_Greet(t *testing.T) {
	t.Parallel()

	t.Run("renders html", func(t *testing.T) {
		t.Parallel()
		rec := serve(t, handlers.NewPages(fakeRenderer{out: "<h1>TestName</h1>"}, ""), "/")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "<h1>TestName</h1>", rec.Body.String())
	})

	t.Run("renderer failure is 500", func(t *testing.T) {
		t.Parallel()
		rec := serve(t, handlers.NewPages(fakeRenderer{err: view.ErrTemplateDir}, ""), "/")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("real renderer with greeting values", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"hangman.mustache": {Data: []byte("<h1>{{title}}</h1>\n{{number_data}}")},
		}
		rec := serve(t, handlers.NewPages(view.NewCached(fsys, "mustache"), "mustache"), "/")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "<h1>TestName</h1>\n123", rec.Body.String())
	})

	t.Run("missing template is 500", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"other.mustache": {Data: []byte("x")}}
		rec := serve(t, handlers.NewPages(view.NewReloading(fsys, "mustache"), "mustache"), "/")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("custom extension", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"hangman.liquid": {Data: []byte("{{number_data}}")}}
		rec := serve(t, handlers.NewPages(view.NewReloading(fsys, "liquid"), "liquid"), "/")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "123", rec.Body.String())
	})
}
