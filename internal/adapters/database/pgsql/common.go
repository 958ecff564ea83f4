package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/comerzia/comerzia_backend/internal/core/domain"
)

// DocumentStatusIssued is the only status a document is born with; annulment
// via credit note does not mutate the original document row.
const DocumentStatusIssued = "ISSUED"

// allocateDocument atomically advances the series counter and inserts the
// issued document row inside the caller's transaction. The UPDATE takes a row
// lock, so two concurrent submissions against the same series serialize and
// each gets a distinct sequence.
func allocateDocument(ctx context.Context, tx pgx.Tx, seriesID string) (*domain.IssuedDocument, error) {
	doc := domain.IssuedDocument{
		DocumentID: uuid.NewString(),
		SeriesID:   seriesID,
		IssueDate:  time.Now().UTC(),
		Status:     DocumentStatusIssued,
	}

	allocQuery := `
		UPDATE document_series
		SET next_sequence = next_sequence + 1
		WHERE series_id = $1 AND is_active
		RETURNING document_type_code, series, next_sequence - 1;
	`
	err := tx.QueryRow(ctx, allocQuery, seriesID).Scan(&doc.DocumentTypeCode, &doc.Series, &doc.Sequence)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("series %s not found or inactive: %w", seriesID, err)
		}
		return nil, fmt.Errorf("failed to allocate sequence on series %s: %w", seriesID, err)
	}

	insertQuery := `
		INSERT INTO documents (document_id, series_id, document_type_code, series, sequence, issue_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, insertQuery,
		doc.DocumentID,
		doc.SeriesID,
		doc.DocumentTypeCode,
		doc.Series,
		doc.Sequence,
		doc.IssueDate,
		doc.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert document %s: %w", doc.DocumentID, err)
	}

	return &doc, nil
}
