package repositories

import (
	"context"

	"github.com/comerzia/comerzia_backend/internal/core/domain"
)

// NoteRepository persists credit/debit notes and serves the note type catalog.
type NoteRepository interface {
	// SaveNote stores the note, allocating the next sequence of the given
	// series and creating the issued document inside the same transaction.
	SaveNote(ctx context.Context, note domain.Note, seriesID string) (*domain.IssuedDocument, error)

	// FindNoteByID returns the note with its items and document.
	FindNoteByID(ctx context.Context, noteID string) (*domain.Note, error)

	// ListNotes returns all notes, newest first.
	ListNotes(ctx context.Context) ([]domain.Note, error)

	// ListNoteTypes returns the active note type catalog.
	ListNoteTypes(ctx context.Context) ([]domain.NoteType, error)

	// FindNoteType returns the note type with the given code.
	FindNoteType(ctx context.Context, code string) (*domain.NoteType, error)
}
