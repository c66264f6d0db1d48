package dto

// Data Transfer Objects for authentication requests.
// No binding tags: field presence is not validated on these payloads.

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
