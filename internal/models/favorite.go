package models

import "time"

// Favorite is the single per-user favorites list. The unique index on UserID
// is what enforces "exactly one list per user".
type Favorite struct {
	ID     int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID int64 `json:"user_id" gorm:"uniqueIndex;not null"`

	// Associations
	User  *UserProfile   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items []FavoriteItem `json:"items" gorm:"foreignKey:FavoriteID;constraint:OnDelete:CASCADE;"`
}

func (Favorite) TableName() string {
	return "favorites"
}

type FavoriteItem struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FavoriteID int64     `json:"favorite_id" gorm:"not null;uniqueIndex:uq_favorite_movie"`
	MovieID    int64     `json:"movie_id" gorm:"not null;uniqueIndex:uq_favorite_movie"`
	CreatedAt  time.Time `json:"created_at"`

	// Associations
	Movie *Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
}

func (FavoriteItem) TableName() string {
	return "favorite_items"
}
