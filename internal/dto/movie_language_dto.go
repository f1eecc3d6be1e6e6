package dto

import "moviehub/internal/models"

type MovieLanguageRequest struct {
	Language string `json:"language" binding:"required"`
	Video    string `json:"video" binding:"required"`
}

type MovieLanguageResponse struct {
	ID       int64  `json:"id"`
	Language string `json:"language"`
	Video    string `json:"video"`
}

func (d MovieLanguageRequest) ToModel() models.MovieLanguage {
	return models.MovieLanguage{Language: d.Language, Video: d.Video}
}

func FromMovieLanguageToResponse(ml models.MovieLanguage) MovieLanguageResponse {
	return MovieLanguageResponse{ID: ml.ID, Language: ml.Language, Video: ml.Video}
}
