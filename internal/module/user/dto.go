package user

import "github.com/storalia/bodega/internal/domain"

// CreateUserRequest represents the input for creating a user.
type CreateUserRequest struct {
	FullName   string `json:"full_name" binding:"required,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8,max=72"`
	Role       string `json:"role" binding:"required"`
	NationalID string `json:"national_id" binding:"max=30"`
	Phone      string `json:"phone" binding:"max=30"`
	PhotoPath  string `json:"photo_path" binding:"max=300"`
}

func (r *CreateUserRequest) toEntity() *domain.User {
	return &domain.User{
		FullName:   r.FullName,
		Email:      r.Email,
		Role:       r.Role,
		NationalID: r.NationalID,
		Phone:      r.Phone,
		PhotoPath:  r.PhotoPath,
	}
}

// UpdateUserRequest represents the input for updating a user. Password is
// optional; when present it replaces the stored credential.
type UpdateUserRequest struct {
	FullName   string `json:"full_name" binding:"required,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"omitempty,min=8,max=72"`
	Role       string `json:"role" binding:"required"`
	NationalID string `json:"national_id" binding:"max=30"`
	Phone      string `json:"phone" binding:"max=30"`
	PhotoPath  string `json:"photo_path" binding:"max=300"`
}

func (r *UpdateUserRequest) toEntity() *domain.User {
	return &domain.User{
		FullName:   r.FullName,
		Email:      r.Email,
		Role:       r.Role,
		NationalID: r.NationalID,
		Phone:      r.Phone,
		PhotoPath:  r.PhotoPath,
	}
}
