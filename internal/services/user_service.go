package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"emanetBack/internal/models"
	"emanetBack/internal/repositories"
	"emanetBack/utils"
)

const (
	accessTokenTTL  = 20 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
	codeTTL         = 10 * time.Minute
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.Manager
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, models.Tokens, error) {
	if s.UserRepo == nil {
		return models.User{}, models.Tokens{}, ErrNoDatabase
	}
	existing, err := s.UserRepo.GetUserByLogin(ctx, req.Phone, req.Email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return models.User{}, models.Tokens{}, err
	}
	if existing.ID != "" {
		return models.User{}, models.Tokens{}, ErrUserDuplicate
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}

	user := models.User{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: string(hashedPassword),
		City:     req.City,
		Role:     "user",
	}
	user, err = s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}
	user.Password = ""
	return user, tokens, nil
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.User, models.Tokens, error) {
	if s.UserRepo == nil {
		return models.User{}, models.Tokens{}, ErrNoDatabase
	}
	user, err := s.UserRepo.GetUserByLogin(ctx, req.Phone, req.Email)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return models.User{}, models.Tokens{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.User{}, models.Tokens{}, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}
	user.Password = ""
	return user, tokens, nil
}

func (s *UserService) issueTokens(ctx context.Context, user models.User) (models.Tokens, error) {
	accessToken, err := s.TokenManager.NewAccessToken(user.ID, user.Role, accessTokenTTL)
	if err != nil {
		return models.Tokens{}, err
	}
	refreshToken, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		refreshToken = uuid.New().String() // fallback if the manager cannot read randomness
	}
	err = s.UserRepo.CreateSession(ctx, models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	})
	if err != nil {
		return models.Tokens{}, err
	}
	return models.Tokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	if s.UserRepo == nil {
		return models.User{}, ErrNoDatabase
	}
	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

// RequestVerification issues a short-lived code for one of the trust
// badges. Delivery (SMS, document check) is simulated: the code comes back
// in the response instead of leaving the system.
func (s *UserService) RequestVerification(ctx context.Context, userID string, kind models.VerificationKind) (models.VerificationCode, error) {
	if s.UserRepo == nil {
		return models.VerificationCode{}, ErrNoDatabase
	}
	if _, err := s.UserRepo.GetUserByID(ctx, userID); err != nil {
		return models.VerificationCode{}, err
	}
	code := models.VerificationCode{
		UserID:    userID,
		Kind:      kind,
		Code:      utils.VerificationCode(),
		ExpiresAt: time.Now().Add(codeTTL),
	}
	if err := s.UserRepo.SaveVerificationCode(ctx, code); err != nil {
		return models.VerificationCode{}, err
	}
	return code, nil
}

// ConfirmVerification checks the submitted code and flips the badge.
func (s *UserService) ConfirmVerification(ctx context.Context, req models.VerifyRequest) (models.User, error) {
	if s.UserRepo == nil {
		return models.User{}, ErrNoDatabase
	}
	stored, err := s.UserRepo.GetVerificationCode(ctx, req.UserID, req.Kind)
	if err != nil {
		return models.User{}, err
	}
	if time.Now().After(stored.ExpiresAt) {
		return models.User{}, ErrCodeExpired
	}
	if stored.Code != req.Code {
		return models.User{}, ErrCodeMismatch
	}
	if err := s.UserRepo.SetVerified(ctx, req.UserID, req.Kind); err != nil {
		return models.User{}, err
	}
	if err := s.UserRepo.DeleteVerificationCode(ctx, req.UserID, req.Kind); err != nil {
		return models.User{}, err
	}
	return s.GetUserByID(ctx, req.UserID)
}
