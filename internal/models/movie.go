package models

import "time"

// Account / movie tiers.
const (
	StatusPro    = "pro"
	StatusSimple = "simple"
)

// Resolution tags a movie can carry.
const (
	Res144  = "p144"
	Res360  = "p360"
	Res480  = "p480"
	Res720  = "p720"
	Res1080 = "p1080"
)

func ValidStatus(s string) bool {
	return s == StatusPro || s == StatusSimple
}

func ValidResolution(r string) bool {
	switch r {
	case Res144, Res360, Res480, Res720, Res1080:
		return true
	}
	return false
}

type Movie struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"size:32;not null"`
	Trailer     string    `json:"trailer" gorm:"not null"`
	Image       string    `json:"image" gorm:"not null"`
	Status      string    `json:"status" gorm:"default:'simple';not null"`
	Year        int       `json:"year" gorm:"not null"`
	Resolutions []string  `json:"resolutions" gorm:"serializer:json"`
	Duration    int       `json:"duration"` // minutes
	Description string    `json:"description" gorm:"type:text"`
	CountryID   int64     `json:"country_id" gorm:"not null;index"`
	DirectorID  *int64    `json:"director_id,omitempty" gorm:"uniqueIndex"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Associations
	Country  *Country  `json:"country,omitempty" gorm:"foreignKey:CountryID"`
	Director *Director `json:"director,omitempty" gorm:"foreignKey:DirectorID;constraint:OnDelete:SET NULL;"`
	Actors   []Actor   `json:"actors,omitempty" gorm:"many2many:movie_actors;"`
	Genres   []Genre   `json:"genres,omitempty" gorm:"many2many:movie_genres;"`
	Moments  []Moment  `json:"moments,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Movie) TableName() string {
	return "movies"
}
