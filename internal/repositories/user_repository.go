package repositories

import (
	"context"
	"database/sql"
	"errors"

	"emanetBack/internal/models"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrVerificationNotFound = errors.New("verification code not found")
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
		INSERT INTO users
			(id, name, phone, email, password, city, role, rating, reviews_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, 0, NOW())
	`
	_, err := r.DB.ExecContext(ctx, query,
		user.ID, user.Name, user.Phone, user.Email, user.Password, user.City, user.Role,
	)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

const userColumns = `
	id, name, phone, email, password, city,
	id_verified, student_verified, phone_verified,
	rating, reviews_count, avatar_path, role, created_at, updated_at`

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.scanUser(r.DB.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetUserByLogin(ctx context.Context, phone, email string) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone = ? OR email = ? LIMIT 1`
	return r.scanUser(r.DB.QueryRowContext(ctx, query, phone, email))
}

func (r *UserRepository) scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	var avatarPath sql.NullString
	err := row.Scan(
		&user.ID, &user.Name, &user.Phone, &user.Email, &user.Password, &user.City,
		&user.Verifications.ID, &user.Verifications.Student, &user.Verifications.Phone,
		&user.Rating, &user.ReviewsCount, &avatarPath, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	if avatarPath.Valid {
		user.AvatarPath = &avatarPath.String
	}
	return user, nil
}

func (r *UserRepository) CreateSession(ctx context.Context, session models.Session) error {
	query := `
		INSERT INTO sessions (user_id, role, refresh_token, expires_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE refresh_token = VALUES(refresh_token), expires_at = VALUES(expires_at)
	`
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.Role, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	query := `SELECT user_id, role, refresh_token, expires_at FROM sessions WHERE refresh_token = ?`
	var session models.Session
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (r *UserRepository) SaveVerificationCode(ctx context.Context, code models.VerificationCode) error {
	query := `
		INSERT INTO verification_codes (user_id, kind, code, expires_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE code = VALUES(code), expires_at = VALUES(expires_at)
	`
	_, err := r.DB.ExecContext(ctx, query, code.UserID, code.Kind, code.Code, code.ExpiresAt)
	return err
}

func (r *UserRepository) GetVerificationCode(ctx context.Context, userID string, kind models.VerificationKind) (models.VerificationCode, error) {
	query := `SELECT user_id, kind, code, expires_at FROM verification_codes WHERE user_id = ? AND kind = ?`
	var code models.VerificationCode
	err := r.DB.QueryRowContext(ctx, query, userID, kind).Scan(
		&code.UserID, &code.Kind, &code.Code, &code.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return models.VerificationCode{}, ErrVerificationNotFound
	}
	if err != nil {
		return models.VerificationCode{}, err
	}
	return code, nil
}

func (r *UserRepository) DeleteVerificationCode(ctx context.Context, userID string, kind models.VerificationKind) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM verification_codes WHERE user_id = ? AND kind = ?`, userID, kind)
	return err
}

// SetVerified flips one of the trust badge columns.
func (r *UserRepository) SetVerified(ctx context.Context, userID string, kind models.VerificationKind) error {
	var column string
	switch kind {
	case models.VerificationID:
		column = "id_verified"
	case models.VerificationStudent:
		column = "student_verified"
	case models.VerificationPhone:
		column = "phone_verified"
	default:
		return errors.New("unknown verification kind")
	}
	result, err := r.DB.ExecContext(ctx,
		`UPDATE users SET `+column+` = TRUE, updated_at = NOW() WHERE id = ?`, userID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
