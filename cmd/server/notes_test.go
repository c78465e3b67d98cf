package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/8SOAT-Team/use-case-lib/config"
	"github.com/8SOAT-Team/use-case-lib/usecase"
)

func TestInMemoryNoteRepository(t *testing.T) {
	repository := &InMemoryNoteRepository{}

	_, ok, err := repository.FindNote(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repository.SaveNote(context.Background(), Note{ID: "b", Title: "second"}))
	require.NoError(t, repository.SaveNote(context.Background(), Note{ID: "a", Title: "first"}))

	note, ok, err := repository.FindNote(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "first", note.Title)

	notes, err := repository.ListNotes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Note{{ID: "a", Title: "first"}, {ID: "b", Title: "second"}}, notes)
}

func TestNoteService(t *testing.T) {
	service := NoteService{Repository: &InMemoryNoteRepository{}}

	t.Run("CreateNote", func(t *testing.T) {
		uc := usecase.New[CreateNoteCommand, *Note]("createNote", usecase.HandlerFunc[CreateNoteCommand, *Note](service.CreateNote))

		result, err := uc.Run(context.Background(), CreateNoteCommand{Title: "  groceries ", Body: "milk"})
		require.NoError(t, err)
		require.True(t, result.HasValue())

		assert.Equal(t, "groceries", result.Value().Title)
		_, err = uuid.FromString(result.Value().ID)
		assert.NoError(t, err)
		assert.False(t, uc.IsFailure())
	})

	t.Run("CreateNote_EmptyTitle", func(t *testing.T) {
		uc := usecase.New[CreateNoteCommand, *Note]("createNote", usecase.HandlerFunc[CreateNoteCommand, *Note](service.CreateNote))

		result, err := uc.Run(context.Background(), CreateNoteCommand{Title: "   "})
		require.NoError(t, err)

		assert.False(t, result.HasValue())
		assert.Equal(t, []usecase.Error{usecase.NewError(usecase.BadRequest, "title is required")}, uc.Errors())
	})

	t.Run("CreateNote_LongTitle", func(t *testing.T) {
		uc := usecase.New[CreateNoteCommand, *Note]("createNote", usecase.HandlerFunc[CreateNoteCommand, *Note](service.CreateNote))

		result, err := uc.Run(context.Background(), CreateNoteCommand{Title: strings.Repeat("x", maxTitleLength+1)})
		require.NoError(t, err)

		assert.False(t, result.HasValue())
		assert.Equal(t, []usecase.Error{usecase.NewError(usecase.Unprocessable, "title is longer than 80 characters")}, uc.Errors())
	})

	t.Run("GetNote_NotFound", func(t *testing.T) {
		uc := usecase.New[GetNoteCommand, *Note]("getNote", usecase.HandlerFunc[GetNoteCommand, *Note](service.GetNote))

		result, err := uc.Run(context.Background(), GetNoteCommand{ID: "nope"})
		require.NoError(t, err)

		assert.False(t, result.HasValue())
		assert.Equal(t, []usecase.Error{usecase.NewError(usecase.NotFound, "note nope not found")}, uc.Errors())
	})
}

func TestRouter(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	cfg, err := config.Load(strings.NewReader("useCases:\n  getNote:\n    throwOnFailure: true\n"))
	require.NoError(t, err)

	router := newRouter(NoteService{Repository: &InMemoryNoteRepository{}}, func(name string) []usecase.Option {
		return []usecase.Option{
			usecase.WithLogger(logger.Named(name)),
			usecase.WithSettings(cfg.Settings(name)),
		}
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader(`{"title":"groceries","body":"milk"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var created Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "groceries", created.Title)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notes/"+created.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"`+created.ID+`","title":"groceries","body":"milk"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notes/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notes?q=GROC", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"`+created.ID+`","title":"groceries","body":"milk"}]`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notes?q=nothing", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader(`{"title":""}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	failed := logs.FilterMessage(usecase.MessageCommandFailed)
	assert.Equal(t, 2, failed.Len())
	assert.Equal(t, "getNote", failed.All()[0].LoggerName)
	assert.Equal(t, "createNote", failed.All()[1].LoggerName)
}
