package models

// MovieLanguage is a standalone dubbed/subtitled track record; it carries no
// movie foreign key.
type MovieLanguage struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Language string `json:"language" gorm:"size:32;not null"`
	Video    string `json:"video" gorm:"not null"`
}

func (MovieLanguage) TableName() string {
	return "movie_languages"
}
