package models

import "time"

type UserProfile struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName    string    `json:"first_name" gorm:"size:32;not null"`
	LastName     *string   `json:"last_name,omitempty" gorm:"size:32"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone        string    `json:"phone"`
	Age          int       `json:"age" gorm:"not null"`
	Status       string    `json:"status" gorm:"default:'simple';not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Associations
	Favorite *Favorite `json:"favorite,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
