package services

import "errors"

var (
	ErrNoDatabase         = errors.New("no database configured")
	ErrUserDuplicate      = errors.New("user with this phone or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCodeMismatch       = errors.New("verification code mismatch")
	ErrCodeExpired        = errors.New("verification code expired")
	ErrEscrowUnsupported  = errors.New("listing does not support protected payment")
	ErrInvalidTransition  = errors.New("escrow status transition not allowed")
	ErrBadSignature       = errors.New("callback signature mismatch")
)
