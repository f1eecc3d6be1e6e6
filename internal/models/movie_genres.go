package models

type MovieGenre struct {
	MovieID int64 `json:"movie_id" gorm:"primaryKey;not null"`
	GenreID int64 `json:"genre_id" gorm:"primaryKey;not null"`
}

func (MovieGenre) TableName() string {
	return "movie_genres"
}
