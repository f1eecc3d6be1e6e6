package models

type Genre struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:64;not null"`

	// Associations
	Movies []Movie `json:"movies,omitempty" gorm:"many2many:movie_genres;"`
}

func (Genre) TableName() string {
	return "genres"
}
