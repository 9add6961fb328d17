package dto

// LoginRequest is the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the envelope of a successful login.
type LoginResponse struct {
	Ok    bool   `json:"ok"`
	Token string `json:"token"`
	User  string `json:"user"`
}
