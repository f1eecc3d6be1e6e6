package models

type Moment struct {
	ID      int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Image   string `json:"image" gorm:"not null"`
	MovieID int64  `json:"movie_id" gorm:"not null;index"`

	// Associations
	Movie *Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
}

func (Moment) TableName() string {
	return "moments"
}
