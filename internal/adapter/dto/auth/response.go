package auth

import "github.com/meetsum/meeting-summarizer/internal/domain/entities"

// UserResponse is the public user shape
type UserResponse struct {
	UserID    string  `json:"user_id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// LoginResponse is the body returned by dev-login
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// UserFromEntity converts a user entity to its response shape
func UserFromEntity(u *entities.User) UserResponse {
	return UserResponse{
		UserID:    u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}
}
