package model

import "time"

// Account represents a registered customer profile.
type Account struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Address      string
	CreatedAt    time.Time
}
