package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"banksampah-backend/internal/domain"
	"banksampah-backend/internal/logger"
	"banksampah-backend/internal/repository"
	"banksampah-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	logger.EnterMethod("authService.Login", "email", email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.IsActive {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		logger.ExitMethodWithError("authService.Login", err, "email", email)
		return "", nil, err
	}

	logger.ExitMethod("authService.Login", "email", email, "role", user.Role)
	return token, user, nil
}
