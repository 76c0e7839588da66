package user

import (
	"context"
	"fmt"
	"time"

	userRepo "parkwise/database/repository/user"
	"parkwise/models"
	"parkwise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// sessionDuration is how long an issued token stays valid.
const sessionDuration = 2 * time.Hour

// DefaultUserService is the production auth service.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

// Login authenticates the given credentials, creating the account first when
// the email is unknown. On success it issues a 2h JWT and stores its hash on
// the user record so the auth middleware can match presented tokens.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		s.Logger.Error("Failed to look up user", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}

	// Unknown email: register on the fly.
	if u == nil {
		u, err = s.register(ctx, email, password)
		if err != nil {
			return nil, err
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Email, sessionDuration)
	if err != nil {
		s.Logger.Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}

	u.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(ctx, u); err != nil {
		s.Logger.Error("Failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}

	return &AuthResponse{Message: "Login successful", Token: token}, nil
}

func (s *DefaultUserService) register(ctx context.Context, email, password string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.Logger.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		s.Logger.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}

	s.Logger.Info("Registered new user", zap.String("email", email))
	return u, nil
}
