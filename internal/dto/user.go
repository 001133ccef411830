package dto

import "villa_api/internal/domain" // Domain models

// UserDTO is the wire-facing shape of a user, the password never leaves the server
type UserDTO struct {
	ID       uint   `json:"id"`       // User id
	UserName string `json:"userName"` // Username
	Name     string `json:"name"`     // Display name
}

// RegistrationRequest is the request body for registering a user
type RegistrationRequest struct {
	Name     string `json:"name" binding:"required"`     // Display name, must be provided
	UserName string `json:"username" binding:"required"` // Username, must be provided
	Password string `json:"password" binding:"required"` // Password, must be provided
	Role     string `json:"role"`                        // Requested role, defaults to customer when empty
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	UserName string `json:"username" binding:"required"` // Username, must be provided
	Password string `json:"password" binding:"required"` // Password, must be provided
}

// LoginResponse carries the signed token and the user it was issued for.
// Both fields stay empty when the credentials do not check out.
type LoginResponse struct {
	Token string   `json:"token"` // Signed JWT, empty on failure
	User  *UserDTO `json:"user"`  // Authenticated user, nil on failure
}

// ToUserDTO maps a persisted user onto its wire shape
func ToUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:       u.ID,       // User id
		UserName: u.UserName, // Username
		Name:     u.Name,     // Display name
	}
}
