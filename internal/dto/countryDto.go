package dto

import "moviehub/internal/models"

// CountryRequest is the full field set for create and update; updates replace
// the stored row with exactly these values.
type CountryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CountryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (d CountryRequest) ToModel() models.Country {
	return models.Country{Name: d.Name}
}

func FromCountryToResponse(c models.Country) CountryResponse {
	return CountryResponse{ID: c.ID, Name: c.Name}
}
