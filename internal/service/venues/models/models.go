package models

import (
	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// SpaceResponse ответ с данными зала
type SpaceResponse struct {
	ID        int64  `json:"id"`
	VenueID   int64  `json:"venueId"`
	VenueName string `json:"venueName"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
}

// SpaceListResponse ответ со списком залов площадки
type SpaceListResponse struct {
	Spaces []SpaceResponse `json:"spaces"`
}

// FromDomainSpaceList конвертирует список domain моделей в DTO
func FromDomainSpaceList(spaces []*domain.Space) *SpaceListResponse {
	resp := &SpaceListResponse{
		Spaces: make([]SpaceResponse, len(spaces)),
	}

	for i, space := range spaces {
		resp.Spaces[i] = SpaceResponse{
			ID:        space.ID,
			VenueID:   space.VenueID,
			VenueName: space.VenueName,
			Name:      space.Name,
			Capacity:  space.Capacity,
		}
	}

	return resp
}
