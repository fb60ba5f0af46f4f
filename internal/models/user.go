package models

import (
	"fmt"
	"math/rand"
)

// DefaultUsername is the well-known seeded account.
const DefaultUsername = "demo_user"

type User struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	Username      string  `gorm:"uniqueIndex;not null" json:"username"`
	Password      string  `gorm:"not null" json:"-"`
	Phone         *string `json:"phone"`
	Points        int     `gorm:"default:0" json:"points"`
	AccountNumber string  `gorm:"not null" json:"accountNumber"`
}

// UserInput is the partial shape accepted by CreateUser.
// Nil or zero fields fall back to defaults.
type UserInput struct {
	Username      *string `json:"username"`
	Password      *string `json:"password"`
	Phone         *string `json:"phone"`
	Points        *int    `json:"points"`
	AccountNumber *string `json:"accountNumber"`
}

// DefaultUserInput describes the seeded demo account.
func DefaultUserInput() UserInput {
	return UserInput{
		Username:      StringPtr(DefaultUsername),
		Password:      StringPtr("password"),
		Points:        IntPtr(1764598),
		AccountNumber: StringPtr("767755884490"),
	}
}

// NewUser fills unset fields of in and returns the record to store under id.
func NewUser(id uint, in UserInput) User {
	return User{
		ID:            id,
		Username:      stringOr(in.Username, DefaultUsernameFor(id)),
		Password:      stringOr(in.Password, "password"),
		Phone:         nonEmpty(in.Phone),
		Points:        intOr(in.Points, 0),
		AccountNumber: stringOr(in.AccountNumber, RandomAccountNumber()),
	}
}

// DefaultUsernameFor names a user created without a username.
func DefaultUsernameFor(id uint) string {
	return fmt.Sprintf("user_%d", id)
}

// RandomAccountNumber returns a 10 digit decimal string.
func RandomAccountNumber() string {
	return fmt.Sprintf("%d", 1_000_000_000+rand.Int63n(9_000_000_000))
}
