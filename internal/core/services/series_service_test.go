package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comerzia/comerzia_backend/internal/apperrors"
	"github.com/comerzia/comerzia_backend/internal/core/domain"
	"github.com/comerzia/comerzia_backend/internal/core/services"
)

func seriesRow(id, docType, series string, category domain.NoteCategory, appliesTo string, next int64) *domain.DocumentSeries {
	return &domain.DocumentSeries{
		SeriesID:         id,
		DocumentTypeCode: docType,
		NoteCategory:     category,
		AppliesToCode:    appliesTo,
		Series:           series,
		NextSequence:     next,
		IsActive:         true,
	}
}

func TestSeriesService_PreviewByDocumentType(t *testing.T) {
	repo := &MockSeriesRepository{}
	repo.On("FindSaleSeries", mock.Anything, domain.DocumentTypeInvoice).
		Return(seriesRow("series-f", "01", "F001", "", "", 42), nil)

	svc := services.NewSeriesService(repo)
	res, err := svc.PreviewByDocumentType(context.Background(), domain.DocumentTypeInvoice)

	require.NoError(t, err)
	assert.Equal(t, "F001-00000042", res.Number())
}

func TestSeriesService_PreviewIsIdempotent(t *testing.T) {
	repo := &MockSeriesRepository{}
	repo.On("FindSaleSeries", mock.Anything, domain.DocumentTypeReceipt).
		Return(seriesRow("series-b", "03", "B001", "", "", 7), nil)

	svc := services.NewSeriesService(repo)
	first, err := svc.PreviewByDocumentType(context.Background(), domain.DocumentTypeReceipt)
	require.NoError(t, err)
	second, err := svc.PreviewByDocumentType(context.Background(), domain.DocumentTypeReceipt)
	require.NoError(t, err)

	// Previews never advance the counter.
	assert.Equal(t, first, second)
}

func TestSeriesService_NoteSeriesRouting(t *testing.T) {
	repo := &MockSeriesRepository{}
	repo.On("FindNoteSeries", mock.Anything, domain.NoteCategoryCredit, domain.DocumentTypeInvoice).
		Return(seriesRow("s1", "07", "FC01", domain.NoteCategoryCredit, "01", 1), nil)
	repo.On("FindNoteSeries", mock.Anything, domain.NoteCategoryCredit, domain.DocumentTypeReceipt).
		Return(seriesRow("s2", "07", "BC01", domain.NoteCategoryCredit, "03", 1), nil)
	repo.On("FindNoteSeries", mock.Anything, domain.NoteCategoryDebit, domain.DocumentTypeInvoice).
		Return(seriesRow("s3", "08", "FD01", domain.NoteCategoryDebit, "01", 1), nil)
	repo.On("FindNoteSeries", mock.Anything, domain.NoteCategoryDebit, domain.DocumentTypeReceipt).
		Return(seriesRow("s4", "08", "BD01", domain.NoteCategoryDebit, "03", 1), nil)

	svc := services.NewSeriesService(repo)
	tests := []struct {
		category  domain.NoteCategory
		appliesTo string
		expected  string
	}{
		{domain.NoteCategoryCredit, domain.DocumentTypeInvoice, "FC01"},
		{domain.NoteCategoryCredit, domain.DocumentTypeReceipt, "BC01"},
		{domain.NoteCategoryDebit, domain.DocumentTypeInvoice, "FD01"},
		{domain.NoteCategoryDebit, domain.DocumentTypeReceipt, "BD01"},
	}
	for _, tt := range tests {
		res, err := svc.ResolveNoteSeries(context.Background(), tt.category, tt.appliesTo)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, res.Series)
	}
}

func TestSeriesService_PreviewBySeriesIDNotFound(t *testing.T) {
	repo := &MockSeriesRepository{}
	repo.On("FindSeriesByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound)

	svc := services.NewSeriesService(repo)
	_, err := svc.PreviewBySeriesID(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
