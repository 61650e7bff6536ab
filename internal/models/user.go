package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:user"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Name          string    `bun:"name" json:"name"`
	Email         string    `bun:"email" json:"email"`
	StartupName   string    `bun:"startup_name" json:"startup_name"`
	PasswordHash  string    `bun:"password_hash" json:"-"`
	IsVerified    bool      `bun:"is_verified" json:"is_verified"`
	CreatedAt     time.Time `bun:"created_at,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at" json:"updated_at"`
}

// UserFromAuth only use in middleware
type UserFromAuth struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type RegisterPayload struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	StartupName string `json:"startupName" validate:"required"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyPayload struct {
	Verified bool `json:"verified"`
}
