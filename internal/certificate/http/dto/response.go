package dto

import (
	certificateUseCase "github.com/allisson/certmaker/internal/certificate/usecase"
)

// StyleResponse represents one selectable style in API responses.
type StyleResponse struct {
	ID          string `json:"id"`
	HasDateLine bool   `json:"hasDateLine"`
}

// ListStylesResponse wraps the style listing.
type ListStylesResponse struct {
	Styles []StyleResponse `json:"styles"`
}

// MapStylesToResponse converts style infos to an API response.
func MapStylesToResponse(infos []certificateUseCase.StyleInfo) ListStylesResponse {
	styles := make([]StyleResponse, 0, len(infos))
	for _, info := range infos {
		styles = append(styles, StyleResponse{
			ID:          string(info.ID),
			HasDateLine: info.HasDateLine,
		})
	}
	return ListStylesResponse{Styles: styles}
}
