package service

import (
	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"
	"go-pos-api/pkg/jwt"
)

type AuthService interface {
	Login(username, password string) (*LoginResponse, error)
}

type LoginResponse struct {
	Message string             `json:"message"`
	Token   string             `json:"token"`
	User    model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Login authenticates by username and password. Unknown username and wrong
// password return the same error so callers cannot probe for accounts.
func (s *authService) Login(username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Message: "login successful",
		Token:   token,
		User:    user.ToResponse(),
	}, nil
}
