package models

// User represents an account that can sign in and obtain a token.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(24)"`
	Name     string `json:"name" gorm:"type:varchar(100)"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password string `json:"-" gorm:"type:varchar(255)"` // bcrypt hash
}

// SignUpInput is the body accepted by the sign-up endpoint.
type SignUpInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
