package dto

import (
	"time"

	"moviehub/internal/models"
)

// ReviewRequest carries rating and/or text; the author comes from the access
// token, never from the payload.
type ReviewRequest struct {
	Rating   *int    `json:"rating,omitempty"`
	Text     *string `json:"text,omitempty"`
	ParentID *int64  `json:"parent_id,omitempty"`
	MovieID  int64   `json:"movie_id" binding:"required"`
}

type ReviewResponse struct {
	ID        int64     `json:"id"`
	Rating    *int      `json:"rating,omitempty"`
	Text      *string   `json:"text,omitempty"`
	ParentID  *int64    `json:"parent_id,omitempty"`
	UserID    int64     `json:"user_id"`
	MovieID   int64     `json:"movie_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (d ReviewRequest) ToModel(userID int64) models.Review {
	return models.Review{
		Rating:   d.Rating,
		Text:     d.Text,
		ParentID: d.ParentID,
		UserID:   userID,
		MovieID:  d.MovieID,
	}
}

func FromReviewToResponse(r models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		Rating:    r.Rating,
		Text:      r.Text,
		ParentID:  r.ParentID,
		UserID:    r.UserID,
		MovieID:   r.MovieID,
		CreatedAt: r.CreatedAt,
	}
}
