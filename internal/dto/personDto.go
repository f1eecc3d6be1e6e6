package dto

import "moviehub/internal/models"

// Directors and actors share the same field set.
type PersonRequest struct {
	Name  string `json:"name" binding:"required"`
	Bio   string `json:"bio,omitempty"`
	Age   int    `json:"age" binding:"required"`
	Image string `json:"image,omitempty"`
}

type PersonResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Bio   string `json:"bio,omitempty"`
	Age   int    `json:"age"`
	Image string `json:"image,omitempty"`
}

func (d PersonRequest) ToDirector() models.Director {
	return models.Director{Name: d.Name, Bio: d.Bio, Age: d.Age, Image: d.Image}
}

func (d PersonRequest) ToActor() models.Actor {
	return models.Actor{Name: d.Name, Bio: d.Bio, Age: d.Age, Image: d.Image}
}

func FromDirectorToResponse(d models.Director) PersonResponse {
	return PersonResponse{ID: d.ID, Name: d.Name, Bio: d.Bio, Age: d.Age, Image: d.Image}
}

func FromActorToResponse(a models.Actor) PersonResponse {
	return PersonResponse{ID: a.ID, Name: a.Name, Bio: a.Bio, Age: a.Age, Image: a.Image}
}
