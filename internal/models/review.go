package models

import "time"

type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Rating    *int      `json:"rating,omitempty" gorm:"check:rating >= 1 AND rating <= 5"`
	Text      *string   `json:"text,omitempty" gorm:"type:text"`
	ParentID  *int64    `json:"parent_id,omitempty" gorm:"index"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	MovieID   int64     `json:"movie_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	Parent *Review      `json:"parent,omitempty" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE;"`
	User   *UserProfile `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Movie  *Movie       `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
}

func (Review) TableName() string {
	return "reviews"
}
