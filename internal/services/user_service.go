package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/rand"

	"turakBack/internal/models"
	"turakBack/internal/repositories"
	"turakBack/utils"
)

const (
	accessTokenTTL  = 20 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
	resetCodeTTL    = 10 * time.Minute
)

type UserService struct {
	UserRepo *repositories.UserRepository
	Tokens   *utils.Manager
	Redis    *redis.Client
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.SignUpResponse, error) {
	if req.Name == "" || req.Password == "" || (req.Phone == "" && req.Email == "") {
		return models.SignUpResponse{}, models.ErrValidation
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.SignUpResponse{}, err
	}

	user, err := s.UserRepo.CreateUser(ctx, models.User{
		Name:     req.Name,
		Surname:  req.Surname,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: string(hashedPassword),
		City:     req.City,
		Role:     models.RoleUser,
	})
	if err != nil {
		return models.SignUpResponse{}, err
	}

	tokens, err := s.createSession(ctx, user)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	return models.SignUpResponse{User: user, Tokens: tokens}, nil
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.Tokens, error) {
	var user models.User
	var err error
	switch {
	case req.Phone != "":
		user, err = s.UserRepo.GetUserByPhone(ctx, req.Phone)
	case req.Email != "":
		user, err = s.UserRepo.GetUserByEmail(ctx, req.Email)
	default:
		return models.Tokens{}, models.ErrValidation
	}
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.Tokens{}, models.ErrInvalidCredentials
		}
		return models.Tokens{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.Tokens{}, models.ErrInvalidCredentials
	}

	return s.createSession(ctx, user)
}

func (s *UserService) createSession(ctx context.Context, user models.User) (models.Tokens, error) {
	accessToken, err := s.Tokens.NewJWT(user.ID, user.Role, accessTokenTTL)
	if err != nil {
		return models.Tokens{}, err
	}
	refreshToken, err := s.Tokens.NewRefreshToken()
	if err != nil {
		return models.Tokens{}, err
	}

	err = s.UserRepo.SaveSession(ctx, models.Session{
		UserID:       user.ID,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	})
	if err != nil {
		return models.Tokens{}, err
	}
	return models.Tokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *UserService) LogOut(ctx context.Context, userID int) error {
	return s.UserRepo.DeleteSession(ctx, userID)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, user models.User, requester models.Requester) (models.User, error) {
	if !requester.IsAdmin() && requester.UserID != user.ID {
		return models.User{}, models.ErrForbidden
	}
	return s.UserRepo.UpdateUser(ctx, user)
}

func (s *UserService) DeleteUser(ctx context.Context, id int, requester models.Requester) error {
	if !requester.IsAdmin() && requester.UserID != id {
		return models.ErrForbidden
	}
	return s.UserRepo.DeleteUser(ctx, id)
}

func (s *UserService) UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) error {
	user, err := s.UserRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return err
	}
	// GetUserByID strips the hash, fetch it through the credential lookup
	stored, err := s.userWithPassword(ctx, user)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(req.OldPassword)); err != nil {
		return models.ErrInvalidPassword
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePassword(ctx, req.UserID, string(hashedPassword))
}

func (s *UserService) userWithPassword(ctx context.Context, user models.User) (models.User, error) {
	if user.Phone != "" {
		return s.UserRepo.GetUserByPhone(ctx, user.Phone)
	}
	if user.Email != "" {
		return s.UserRepo.GetUserByEmail(ctx, user.Email)
	}
	return models.User{}, models.ErrUserNotFound
}

func (s *UserService) SetFCMToken(ctx context.Context, userID int, token string) error {
	return s.UserRepo.SetFCMToken(ctx, userID, token)
}

// Password reset: a 6-digit code is stored in Redis under the user's email
// with a short TTL. Delivery (SMS/email) happens out of band.

func resetCodeKey(email string) string {
	return "reset_code:" + email
}

func (s *UserService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if _, err := s.UserRepo.GetUserByEmail(ctx, email); err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	if err := s.Redis.Set(ctx, resetCodeKey(email), code, resetCodeTTL).Err(); err != nil {
		return "", err
	}
	return code, nil
}

func (s *UserService) VerifyResetCode(ctx context.Context, email, code string) error {
	stored, err := s.Redis.Get(ctx, resetCodeKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return models.ErrInvalidResetCode
	}
	if err != nil {
		return err
	}
	if stored != code {
		return models.ErrInvalidResetCode
	}
	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if err := s.VerifyResetCode(ctx, email, code); err != nil {
		return err
	}
	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.UserRepo.UpdatePassword(ctx, user.ID, string(hashedPassword)); err != nil {
		return err
	}
	s.Redis.Del(ctx, resetCodeKey(email))
	return nil
}
