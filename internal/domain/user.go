package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the access level carried in identity-provider claims.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleMember    Role = "member"
)

// User mirrors the identity-provider account locally. Credentials stay
// with the provider; only profile and role are synced here.
type User struct {
	ID         int64      `json:"id"`
	ExternalID string     `json:"external_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	AvatarURL  *string    `json:"avatar_url"`
	Deleted    bool       `json:"deleted"`
	DeletedAt  *time.Time `json:"deleted_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Claims are the validated contents of an identity-provider token.
type Claims struct {
	ExternalID string
	Name       string
	Email      string
	Role       Role
	jwt.RegisteredClaims
}
