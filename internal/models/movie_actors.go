package models

// explicit join model so junction rows can be managed inside cascade transactions
type MovieActor struct {
	MovieID int64 `json:"movie_id" gorm:"primaryKey;not null"`
	ActorID int64 `json:"actor_id" gorm:"primaryKey;not null"`
}

func (MovieActor) TableName() string {
	return "movie_actors"
}
