package entities

import (
	"github.com/google/uuid"
)

// User is created once at signup and never mutated afterwards. Username
// uniqueness is enforced by the store's unique constraint; the signup
// pre-check only gives a nicer error for the sequential case.
type User struct {
	ID           string `json:"id" gorm:"primaryKey" bson:"_id"`
	Username     string `json:"username" gorm:"uniqueIndex;not null" bson:"username"`
	PasswordHash string `json:"-" gorm:"not null" bson:"passwordHash"`
}

func NewUser(username, passwordHash string) *User {
	return &User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
	}
}
