package dto

import "github.com/comerzia/comerzia_backend/internal/core/domain"

// SeriesReservationResponse is the advisory next-number preview returned by
// the series endpoint. Display-only; allocation happens at submission.
type SeriesReservationResponse struct {
	SeriesID string `json:"seriesID"`
	Series   string `json:"series"`
	Sequence int64  `json:"sequence"`
	Number   string `json:"number"`
}

// ToSeriesReservationResponse converts a domain reservation.
func ToSeriesReservationResponse(r domain.SeriesReservation) SeriesReservationResponse {
	return SeriesReservationResponse{
		SeriesID: r.SeriesID,
		Series:   r.Series,
		Sequence: r.Sequence,
		Number:   r.Number(),
	}
}
