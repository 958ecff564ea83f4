package services

import (
	"context"
	"fmt"

	"github.com/comerzia/comerzia_backend/internal/core/domain"
	portsrepo "github.com/comerzia/comerzia_backend/internal/core/ports/repositories"
	portssvc "github.com/comerzia/comerzia_backend/internal/core/ports/services"
)

// seriesService previews document numbers. Previews are plain reads of the
// series counter; the actual allocation happens inside the sale/note
// submission transaction, so a previewed number is advisory until issuance.
type seriesService struct {
	seriesRepo portsrepo.SeriesRepository
}

// NewSeriesService creates a new SeriesService.
func NewSeriesService(seriesRepo portsrepo.SeriesRepository) portssvc.SeriesSvcFacade {
	return &seriesService{seriesRepo: seriesRepo}
}

var _ portssvc.SeriesSvcFacade = (*seriesService)(nil)

// PreviewByDocumentType previews the next number of the active series for a
// sale document type code.
func (s *seriesService) PreviewByDocumentType(ctx context.Context, documentTypeCode string) (domain.SeriesReservation, error) {
	series, err := s.seriesRepo.FindSaleSeries(ctx, documentTypeCode)
	if err != nil {
		return domain.SeriesReservation{}, fmt.Errorf("failed to find series for document type %s: %w", documentTypeCode, err)
	}
	return reservationFrom(series), nil
}

// PreviewBySeriesID previews the next number of a specific series.
func (s *seriesService) PreviewBySeriesID(ctx context.Context, seriesID string) (domain.SeriesReservation, error) {
	series, err := s.seriesRepo.FindSeriesByID(ctx, seriesID)
	if err != nil {
		return domain.SeriesReservation{}, fmt.Errorf("failed to find series %s: %w", seriesID, err)
	}
	return reservationFrom(series), nil
}

// ResolveNoteSeries previews the note series selected by the note category
// and the document type of the sale being corrected. Each of the four
// combinations routes to its own series.
func (s *seriesService) ResolveNoteSeries(ctx context.Context, category domain.NoteCategory, appliesToCode string) (domain.SeriesReservation, error) {
	series, err := s.seriesRepo.FindNoteSeries(ctx, category, appliesToCode)
	if err != nil {
		return domain.SeriesReservation{}, fmt.Errorf("failed to find %s note series for document type %s: %w", category, appliesToCode, err)
	}
	return reservationFrom(series), nil
}

func reservationFrom(series *domain.DocumentSeries) domain.SeriesReservation {
	return domain.SeriesReservation{
		SeriesID: series.SeriesID,
		Series:   series.Series,
		Sequence: series.NextSequence,
	}
}
