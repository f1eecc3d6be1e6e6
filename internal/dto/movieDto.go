package dto

import (
	"time"

	"moviehub/internal/models"
)

// MovieRequest is used for POST and PUT alike: an update replaces the full
// field set, absent optional fields become null.
type MovieRequest struct {
	Name        string   `json:"name" binding:"required"`
	Trailer     string   `json:"trailer" binding:"required"`
	Image       string   `json:"image" binding:"required"`
	Status      string   `json:"status,omitempty"`
	Year        int      `json:"year" binding:"required"`
	Resolutions []string `json:"resolutions,omitempty"`
	Duration    int      `json:"duration" binding:"required"`
	Description string   `json:"description,omitempty"`
	CountryID   int64    `json:"country_id" binding:"required"`
	DirectorID  *int64   `json:"director_id,omitempty"`
	ActorIDs    []int64  `json:"actor_ids,omitempty"`
	GenreIDs    []int64  `json:"genre_ids,omitempty"`
}

type MovieResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Trailer     string           `json:"trailer"`
	Image       string           `json:"image"`
	Status      string           `json:"status"`
	Year        int              `json:"year"`
	Resolutions []string         `json:"resolutions,omitempty"`
	Duration    int              `json:"duration"`
	Description string           `json:"description,omitempty"`
	CountryID   int64            `json:"country_id"`
	DirectorID  *int64           `json:"director_id,omitempty"`
	Actors      []PersonResponse `json:"actors,omitempty"`
	Genres      []GenreResponse  `json:"genres,omitempty"`
	Moments     []MomentResponse `json:"moments,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

func (d MovieRequest) ToModel() models.Movie {
	return models.Movie{
		Name:        d.Name,
		Trailer:     d.Trailer,
		Image:       d.Image,
		Status:      d.Status,
		Year:        d.Year,
		Resolutions: d.Resolutions,
		Duration:    d.Duration,
		Description: d.Description,
		CountryID:   d.CountryID,
		DirectorID:  d.DirectorID,
	}
}

func FromMovieToResponse(m models.Movie) MovieResponse {
	resp := MovieResponse{
		ID:          m.ID,
		Name:        m.Name,
		Trailer:     m.Trailer,
		Image:       m.Image,
		Status:      m.Status,
		Year:        m.Year,
		Resolutions: m.Resolutions,
		Duration:    m.Duration,
		Description: m.Description,
		CountryID:   m.CountryID,
		DirectorID:  m.DirectorID,
		CreatedAt:   m.CreatedAt,
	}
	for _, a := range m.Actors {
		resp.Actors = append(resp.Actors, FromActorToResponse(a))
	}
	for _, g := range m.Genres {
		resp.Genres = append(resp.Genres, FromGenreToResponse(g))
	}
	for _, mo := range m.Moments {
		resp.Moments = append(resp.Moments, FromMomentToResponse(mo))
	}
	return resp
}
