package models

import (
	"time"

	"github.com/golang-jwt/jwt"
)

type User struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Phone         string        `json:"phone,omitempty"`
	Email         string        `json:"email,omitempty"`
	Password      string        `json:"password,omitempty"`
	City          string        `json:"city"`
	Verifications Verifications `json:"verifications"`
	Rating        float64       `json:"rating"`
	ReviewsCount  int           `json:"reviews_count"`
	AvatarPath    *string       `json:"avatar_path,omitempty"`
	Role          string        `json:"role"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     *time.Time    `json:"updated_at,omitempty"`
}

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type Tokens struct {
	AccessToken  string
	RefreshToken string
}

type Session struct {
	UserID       string    `json:"user_id"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type SignUpRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
	City     string `json:"city"`
}

type SignInRequest struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerificationKind selects which trust badge a confirmation code flips.
type VerificationKind string

const (
	VerificationID      VerificationKind = "id"
	VerificationStudent VerificationKind = "student"
	VerificationPhone   VerificationKind = "phone"
)

type VerificationCode struct {
	UserID    string           `json:"user_id"`
	Kind      VerificationKind `json:"kind"`
	Code      string           `json:"code"`
	ExpiresAt time.Time        `json:"expires_at"`
}

type VerifyRequest struct {
	UserID string           `json:"user_id"`
	Kind   VerificationKind `json:"kind"`
	Code   string           `json:"code"`
}
