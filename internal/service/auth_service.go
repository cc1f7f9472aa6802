package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Towaiji/InventoryPro/internal/model"
	"github.com/Towaiji/InventoryPro/internal/repository"
	"github.com/Towaiji/InventoryPro/pkg/jwt"
	"github.com/Towaiji/InventoryPro/pkg/validator"
)

type AuthService interface {
	SignUp(email, password, fullName string) (*AuthResponse, error)
	SignIn(email, password string) (*AuthResponse, error)
	SignOut(userID uuid.UUID) error
	CurrentUser(userID uuid.UUID) (*model.UserResponse, error)
}

type AuthResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) SignUp(email, password, fullName string) (*AuthResponse, error) {
	user := &model.User{
		Email:        email,
		FullName:     fullName,
		TokenVersion: uuid.New().String(),
	}

	if errs := validator.ValidateStruct(user); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	if existing, _ := s.userRepo.FindByEmail(email); existing != nil {
		return nil, ErrEmailTaken
	}

	if err := user.SetPassword(password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName, user.TokenVersion)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &AuthResponse{Token: token, User: user.ToResponse()}, nil
}

func (s *authService) SignIn(email, password string) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName, user.TokenVersion)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &AuthResponse{Token: token, User: user.ToResponse()}, nil
}

// SignOut rotates the user's token version so every previously issued
// token stops validating.
func (s *authService) SignOut(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrNotAuthenticated
	}
	return s.userRepo.UpdateTokenVersion(userID, uuid.New().String())
}

func (s *authService) CurrentUser(userID uuid.UUID) (*model.UserResponse, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	resp := user.ToResponse()
	return &resp, nil
}
