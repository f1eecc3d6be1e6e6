package dto

import (
	"time"

	"moviehub/internal/models"
)

// AddFavoriteRequest: payload to add a movie to the caller's list
type AddFavoriteRequest struct {
	MovieID int64 `json:"movie_id" binding:"required"`
}

// FavoriteItemResponse: one entry on the list
type FavoriteItemResponse struct {
	ID      int64          `json:"id"`
	MovieID int64          `json:"movie_id"`
	Movie   *MovieResponse `json:"movie,omitempty"`
	AddedAt time.Time      `json:"added_at"`
}

// FavoriteResponse: the list with its items in insertion order
type FavoriteResponse struct {
	ID     int64                  `json:"id"`
	UserID int64                  `json:"user_id"`
	Items  []FavoriteItemResponse `json:"items"`
	Total  int                    `json:"total"`
}

func FromFavoriteItemToResponse(item models.FavoriteItem) FavoriteItemResponse {
	resp := FavoriteItemResponse{
		ID:      item.ID,
		MovieID: item.MovieID,
		AddedAt: item.CreatedAt,
	}
	if item.Movie != nil {
		movie := FromMovieToResponse(*item.Movie)
		resp.Movie = &movie
	}
	return resp
}

func FromFavoriteToResponse(f models.Favorite) FavoriteResponse {
	items := make([]FavoriteItemResponse, 0, len(f.Items))
	for _, item := range f.Items {
		items = append(items, FromFavoriteItemToResponse(item))
	}
	return FavoriteResponse{
		ID:     f.ID,
		UserID: f.UserID,
		Items:  items,
		Total:  len(items),
	}
}
