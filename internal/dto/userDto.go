package dto

import (
	"time"

	"moviehub/internal/models"
)

// UserRequest is the registration/update payload. Password is required on
// registration; on update an empty password keeps the stored hash.
type UserRequest struct {
	FirstName string  `json:"first_name" binding:"required"`
	LastName  *string `json:"last_name,omitempty"`
	Username  string  `json:"username" binding:"required"`
	Password  string  `json:"password,omitempty"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     string  `json:"phone,omitempty"`
	Age       int     `json:"age" binding:"required"`
	Status    string  `json:"status,omitempty"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  *string   `json:"last_name,omitempty"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Age       int       `json:"age"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (d UserRequest) ToModel() models.UserProfile {
	return models.UserProfile{
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Username:  d.Username,
		Email:     d.Email,
		Phone:     d.Phone,
		Age:       d.Age,
		Status:    d.Status,
	}
}

func FromUserToResponse(u models.UserProfile) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		Age:       u.Age,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
