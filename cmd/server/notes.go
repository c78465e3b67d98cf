package main

import (
	"context"
	"strings"
	"sync"

	"github.com/gofrs/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/8SOAT-Team/use-case-lib/usecase"
)

// Note is a short text stored by the demo server.
type Note struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body,omitempty" yaml:"body,omitempty"`
}

type CreateNoteCommand struct {
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
}

type GetNoteCommand struct {
	ID string `schema:"id" json:"id" yaml:"id"`
}

type ListNotesCommand struct {
	Query string `schema:"q" json:"q,omitempty" yaml:"q,omitempty"`
}

const maxTitleLength = 80

// NoteRepository stores notes.
type NoteRepository interface {
	FindNote(ctx context.Context, id string) (Note, bool, error)
	SaveNote(ctx context.Context, note Note) error
	ListNotes(ctx context.Context) ([]Note, error)
}

type InMemoryNoteRepository struct {
	entries map[string]Note

	initOnce sync.Once
	mu       sync.RWMutex
}

func (r *InMemoryNoteRepository) init() {
	r.initOnce.Do(func() {
		if r.entries == nil {
			r.entries = make(map[string]Note)
		}
	})
}

func (r *InMemoryNoteRepository) FindNote(_ context.Context, id string) (Note, bool, error) {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, ok := r.entries[id]

	return note, ok, nil
}

func (r *InMemoryNoteRepository) SaveNote(_ context.Context, note Note) error {
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[note.ID] = note

	return nil
}

func (r *InMemoryNoteRepository) ListNotes(_ context.Context) ([]Note, error) {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := maps.Values(r.entries)
	slices.SortFunc(notes, func(a, b Note) bool { return a.ID < b.ID })

	return notes, nil
}

// NoteService implements the note use case handlers.
type NoteService struct {
	Repository NoteRepository
}

func (s NoteService) CreateNote(ctx context.Context, command CreateNoteCommand) (*Note, error) {
	title := strings.TrimSpace(command.Title)
	if title == "" {
		return nil, usecase.NewBusinessError(usecase.BadRequest, "title is required")
	}

	if len(title) > maxTitleLength {
		usecase.RecorderFromContext(ctx).AddError(usecase.NewError(
			usecase.Unprocessable,
			"title is longer than 80 characters",
		))

		return nil, nil
	}

	id, err := newNoteID()
	if err != nil {
		return nil, err
	}

	note := Note{
		ID:    id,
		Title: title,
		Body:  command.Body,
	}

	err = s.Repository.SaveNote(ctx, note)
	if err != nil {
		return nil, err
	}

	return &note, nil
}

func (s NoteService) GetNote(ctx context.Context, command GetNoteCommand) (*Note, error) {
	note, ok, err := s.Repository.FindNote(ctx, command.ID)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, usecase.NewBusinessError(usecase.NotFound, "note %s not found", command.ID)
	}

	return &note, nil
}

func (s NoteService) ListNotes(ctx context.Context, command ListNotesCommand) ([]Note, error) {
	notes, err := s.Repository.ListNotes(ctx)
	if err != nil {
		return nil, err
	}

	if command.Query == "" {
		return notes, nil
	}

	filtered := make([]Note, 0, len(notes))
	for _, note := range notes {
		if strings.Contains(strings.ToLower(note.Title), strings.ToLower(command.Query)) {
			filtered = append(filtered, note)
		}
	}

	return filtered, nil
}

func newNoteID() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}
