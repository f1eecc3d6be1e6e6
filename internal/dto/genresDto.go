package dto

import "moviehub/internal/models"

type GenreRequest struct {
	Name string `json:"name" binding:"required"`
}

type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (d GenreRequest) ToModel() models.Genre {
	return models.Genre{Name: d.Name}
}

func FromGenreToResponse(g models.Genre) GenreResponse {
	return GenreResponse{ID: g.ID, Name: g.Name}
}
