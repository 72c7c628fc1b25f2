package dto

import "github.com/wayfarerhq/wayfarer_backend/internal/core/domain"

// RegisterRequest defines the payload for user registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=1,max=64"`
	Password string `json:"password" binding:"required,min=1"`
}

// LoginRequest defines the payload for credential login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the API access token issued on login. The session
// cookie is set on the response separately and never appears in the body.
type LoginResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// ExchangeCodeRequest defines the payload for the Google OAuth code exchange.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	Username     string `json:"username"`
	AuthProvider string `json:"authProvider"`
}

// ToUserResponse converts a domain.User to its public representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		Username:     u.Username,
		AuthProvider: string(u.AuthProvider),
	}
}
