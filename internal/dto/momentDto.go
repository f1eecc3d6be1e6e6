package dto

import "moviehub/internal/models"

type MomentRequest struct {
	Image   string `json:"image" binding:"required"`
	MovieID int64  `json:"movie_id" binding:"required"`
}

type MomentResponse struct {
	ID      int64  `json:"id"`
	Image   string `json:"image"`
	MovieID int64  `json:"movie_id"`
}

func (d MomentRequest) ToModel() models.Moment {
	return models.Moment{Image: d.Image, MovieID: d.MovieID}
}

func FromMomentToResponse(m models.Moment) MomentResponse {
	return MomentResponse{ID: m.ID, Image: m.Image, MovieID: m.MovieID}
}
