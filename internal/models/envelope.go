package models

// Envelope is the JSON wrapper of every API response.
type Envelope struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Errors  []string    `json:"errors,omitempty"`
}

// SignInResult is returned by a successful sign-in.
type SignInResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
