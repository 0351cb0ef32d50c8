package models

// Credential pairs a login identity with its password. Credentials are
// matched against fixture data inside the authenticator and never leave it.
type Credential struct {
	Email       string `json:"email"`
	UserName    string `json:"userName"`
	Password    string `json:"password"`
	DisplayName string `json:"name"`
}

// LoginRequest is what the login form submits: a single field that may be
// either the email or the username, plus the password.
type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername"`
	Password        string `json:"password"`
}

// SignupRequest carries a new account's profile plus its password.
type SignupRequest struct {
	CreateUserRequest
	Password string `json:"password"`
}

// AuthResponse is the session identity returned by login and signup:
// an opaque access token, its validity window in seconds, and the full
// user profile the token was issued for.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
	User        User   `json:"user"`
}
