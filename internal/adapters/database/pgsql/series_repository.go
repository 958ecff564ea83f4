package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/comerzia/comerzia_backend/internal/apperrors"
	"github.com/comerzia/comerzia_backend/internal/core/domain"
	portsrepo "github.com/comerzia/comerzia_backend/internal/core/ports/repositories"
)

type PgxSeriesRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSeriesRepository creates a new repository for document series data.
func NewPgxSeriesRepository(pool *pgxpool.Pool) portsrepo.SeriesRepository {
	return &PgxSeriesRepository{pool: pool}
}

const seriesSelect = `
	SELECT series_id, document_type_code, note_category, applies_to_code, series, next_sequence, is_active
	FROM document_series
`

// FindSeriesByID retrieves a series by its ID.
func (r *PgxSeriesRepository) FindSeriesByID(ctx context.Context, seriesID string) (*domain.DocumentSeries, error) {
	query := seriesSelect + ` WHERE series_id = $1;`
	series, err := scanSeries(r.pool.QueryRow(ctx, query, seriesID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find series by ID %s: %w", seriesID, err)
	}
	return series, nil
}

// FindSaleSeries retrieves the active series for a sale document type.
func (r *PgxSeriesRepository) FindSaleSeries(ctx context.Context, documentTypeCode string) (*domain.DocumentSeries, error) {
	query := seriesSelect + ` WHERE document_type_code = $1 AND note_category IS NULL AND is_active ORDER BY series LIMIT 1;`
	series, err := scanSeries(r.pool.QueryRow(ctx, query, documentTypeCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find series for document type %s: %w", documentTypeCode, err)
	}
	return series, nil
}

// FindNoteSeries retrieves the active note series for the given note category
// and the document type of the corrected sale.
func (r *PgxSeriesRepository) FindNoteSeries(ctx context.Context, category domain.NoteCategory, appliesToCode string) (*domain.DocumentSeries, error) {
	query := seriesSelect + ` WHERE note_category = $1 AND applies_to_code = $2 AND is_active ORDER BY series LIMIT 1;`
	series, err := scanSeries(r.pool.QueryRow(ctx, query, category, appliesToCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s note series for document type %s: %w", category, appliesToCode, err)
	}
	return series, nil
}

func scanSeries(row pgx.Row) (*domain.DocumentSeries, error) {
	var series domain.DocumentSeries
	var noteCategory, appliesToCode *string

	if err := row.Scan(
		&series.SeriesID,
		&series.DocumentTypeCode,
		&noteCategory,
		&appliesToCode,
		&series.Series,
		&series.NextSequence,
		&series.IsActive,
	); err != nil {
		return nil, err
	}
	if noteCategory != nil {
		series.NoteCategory = domain.NoteCategory(*noteCategory)
	}
	if appliesToCode != nil {
		series.AppliesToCode = *appliesToCode
	}
	return &series, nil
}
