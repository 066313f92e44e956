package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidPassword = errors.New("invalid password")
var ErrInvalidUserID = errors.New("invalid user id")

// User models a registered account.
//
// PasswordHash is the bcrypt output stored at registration time. It is never
// serialized to JSON, and profile reads exclude it at the store level as
// well, so it cannot leak through any response envelope.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
