package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/comerzia/comerzia_backend/internal/apperrors"
	"github.com/comerzia/comerzia_backend/internal/core/domain"
	portsrepo "github.com/comerzia/comerzia_backend/internal/core/ports/repositories"
)

type PgxNoteRepository struct {
	pool *pgxpool.Pool
}

// NewPgxNoteRepository creates a new repository for credit/debit note data.
func NewPgxNoteRepository(pool *pgxpool.Pool) portsrepo.NoteRepository {
	return &PgxNoteRepository{pool: pool}
}

// SaveNote stores a note with its items, allocating the document number
// within the same DB transaction.
func (r *PgxNoteRepository) SaveNote(ctx context.Context, note domain.Note, seriesID string) (*domain.IssuedDocument, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	doc, err := allocateDocument(ctx, tx, seriesID)
	if err != nil {
		return nil, err
	}

	noteQuery := `
		INSERT INTO credit_debit_notes (note_id, sale_id, original_document_id, note_type_code, reason, document_id, subtotal_amount, tax_amount, total_amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, noteQuery,
		note.NoteID,
		note.SaleID,
		note.OriginalDocumentID,
		note.NoteTypeCode,
		note.Reason,
		doc.DocumentID,
		note.SubtotalAmount,
		note.TaxAmount,
		note.TotalAmount,
		note.CreatedAt,
		note.CreatedBy,
		note.LastUpdatedAt,
		note.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert note %s: %w", note.NoteID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO note_items (note_item_id, note_id, position, item_type, product_id, service_id, description, quantity, unit_price, discount_percentage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for i, item := range note.Items {
		batch.Queue(itemQuery,
			uuid.NewString(),
			note.NoteID,
			i,
			item.ItemType,
			item.ProductID,
			item.ServiceID,
			item.Description,
			item.Quantity,
			item.UnitPrice,
			item.DiscountPercentage,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("failed to execute item batch for note %s: %w", note.NoteID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction for note %s: %w", note.NoteID, err)
	}
	return doc, nil
}

// FindNoteByID retrieves a note with its items and document.
func (r *PgxNoteRepository) FindNoteByID(ctx context.Context, noteID string) (*domain.Note, error) {
	query := noteSelect + ` WHERE n.note_id = $1;`
	note, err := scanNote(r.pool.QueryRow(ctx, query, noteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find note by ID %s: %w", noteID, err)
	}

	note.Items, err = r.findNoteItems(ctx, noteID)
	if err != nil {
		return nil, err
	}
	return note, nil
}

// ListNotes retrieves all notes, newest first. Items are not loaded for
// listings.
func (r *PgxNoteRepository) ListNotes(ctx context.Context) ([]domain.Note, error) {
	query := noteSelect + ` ORDER BY n.created_at DESC;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		notes = append(notes, *note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}
	return notes, nil
}

// ListNoteTypes retrieves the active note type catalog, credits first.
func (r *PgxNoteRepository) ListNoteTypes(ctx context.Context) ([]domain.NoteType, error) {
	query := `
		SELECT code, name, category, is_active
		FROM credit_debit_note_types
		WHERE is_active
		ORDER BY category, code;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query note types: %w", err)
	}
	defer rows.Close()

	types := []domain.NoteType{}
	for rows.Next() {
		var nt domain.NoteType
		if err := rows.Scan(&nt.Code, &nt.Name, &nt.Category, &nt.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan note type row: %w", err)
		}
		types = append(types, nt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note type rows: %w", err)
	}
	return types, nil
}

// FindNoteType retrieves a note type by its code.
func (r *PgxNoteRepository) FindNoteType(ctx context.Context, code string) (*domain.NoteType, error) {
	query := `
		SELECT code, name, category, is_active
		FROM credit_debit_note_types
		WHERE code = $1;
	`
	var nt domain.NoteType
	err := r.pool.QueryRow(ctx, query, code).Scan(&nt.Code, &nt.Name, &nt.Category, &nt.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find note type %s: %w", code, err)
	}
	return &nt, nil
}

func (r *PgxNoteRepository) findNoteItems(ctx context.Context, noteID string) ([]domain.LineItem, error) {
	query := `
		SELECT item_type, product_id, service_id, description, quantity, unit_price, discount_percentage
		FROM note_items
		WHERE note_id = $1
		ORDER BY position;
	`
	rows, err := r.pool.Query(ctx, query, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for note %s: %w", noteID, err)
	}
	defer rows.Close()
	return scanLineItems(rows)
}

const noteSelect = `
	SELECT n.note_id, n.sale_id, n.original_document_id, n.note_type_code, n.reason,
	       n.subtotal_amount, n.tax_amount, n.total_amount,
	       n.created_at, n.created_by, n.last_updated_at, n.last_updated_by,
	       d.document_id, d.series_id, d.document_type_code, d.series, d.sequence, d.issue_date, d.status
	FROM credit_debit_notes n
	JOIN documents d ON d.document_id = n.document_id
`

func scanNote(row pgx.Row) (*domain.Note, error) {
	var note domain.Note
	var doc domain.IssuedDocument
	var issueDate time.Time

	if err := row.Scan(
		&note.NoteID,
		&note.SaleID,
		&note.OriginalDocumentID,
		&note.NoteTypeCode,
		&note.Reason,
		&note.SubtotalAmount,
		&note.TaxAmount,
		&note.TotalAmount,
		&note.CreatedAt,
		&note.CreatedBy,
		&note.LastUpdatedAt,
		&note.LastUpdatedBy,
		&doc.DocumentID,
		&doc.SeriesID,
		&doc.DocumentTypeCode,
		&doc.Series,
		&doc.Sequence,
		&issueDate,
		&doc.Status,
	); err != nil {
		return nil, err
	}
	doc.IssueDate = issueDate
	note.Document = &doc
	return &note, nil
}
