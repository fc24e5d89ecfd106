package dto

import authdomain "taskmanager-backend/internal/auth/domain"

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Age      int    `json:"age" binding:"omitempty,gte=0"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=7"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest carries the mutable profile fields. Pointer fields so an
// absent key and a zero value can be told apart; the handler separately
// rejects any key outside this set.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Age      *int    `json:"age" binding:"omitempty,gte=0"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password"`
}

type TokenResponse struct {
	User  *authdomain.User `json:"user"`
	Token string           `json:"token"`
}
