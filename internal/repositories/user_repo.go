package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"turakBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

// nullIfEmpty maps an absent value to NULL so the UNIQUE indexes on phone
// and email never collide on empty strings.
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
        INSERT INTO users (name, surname, phone, email, password, city, role, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id`

	user.CreatedAt = time.Now()
	err := r.DB.QueryRowContext(ctx, query,
		user.Name, user.Surname, nullIfEmpty(user.Phone), nullIfEmpty(user.Email), user.Password,
		user.City, user.Role, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return models.User{}, models.ErrDuplicateEmail
		}
		if strings.Contains(err.Error(), "users_phone_key") {
			return models.User{}, models.ErrDuplicatePhone
		}
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

const userColumns = `id, name, surname, COALESCE(phone, ''), COALESCE(email, ''), password,
       city, role, avatar_path, fcm_token, created_at, updated_at`

func (r *UserRepository) scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Surname, &user.Phone, &user.Email, &user.Password,
		&user.City, &user.Role, &user.AvatarPath, &user.FCMToken, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := r.scanUser(row)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return r.scanUser(row)
}

func (r *UserRepository) GetUserByPhone(ctx context.Context, phone string) (models.User, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE phone = $1`, phone)
	return r.scanUser(row)
}

func (r *UserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	updatedAt := time.Now()
	query := `
        UPDATE users SET name = $1, surname = $2, city = $3, avatar_path = $4, updated_at = $5
        WHERE id = $6`

	res, err := r.DB.ExecContext(ctx, query,
		user.Name, user.Surname, user.City, user.AvatarPath, updatedAt, user.ID)
	if err != nil {
		return models.User{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.User{}, models.ErrUserNotFound
	}
	user.UpdatedAt = &updatedAt
	user.Password = ""
	return user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID int, hashedPassword string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE users SET password = $1, updated_at = $2 WHERE id = $3`,
		hashedPassword, time.Now(), userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SetFCMToken(ctx context.Context, userID int, token string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE users SET fcm_token = $1 WHERE id = $2`, token, userID)
	return err
}

func (r *UserRepository) GetFCMToken(ctx context.Context, userID int) (string, error) {
	var token sql.NullString
	err := r.DB.QueryRowContext(ctx, `SELECT fcm_token FROM users WHERE id = $1`, userID).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", models.ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return token.String, nil
}

// Sessions

func (r *UserRepository) SaveSession(ctx context.Context, session models.Session) error {
	query := `
        INSERT INTO sessions (user_id, refresh_token, expires_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id) DO UPDATE SET refresh_token = $2, expires_at = $3`

	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.RefreshToken, session.ExpiresAt)
	return err
}

// GetSessionByToken returns the session and the role of its user.
func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, string, error) {
	query := `
        SELECT s.user_id, s.refresh_token, s.expires_at, u.role
        FROM sessions s
        JOIN users u ON s.user_id = u.id
        WHERE s.refresh_token = $1`

	var session models.Session
	var role string
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.RefreshToken, &session.ExpiresAt, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, "", models.ErrNoRecord
	}
	if err != nil {
		return models.Session{}, "", err
	}
	return session, role, nil
}

func (r *UserRepository) DeleteSession(ctx context.Context, userID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	return err
}
