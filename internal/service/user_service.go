package service

import (
	"errors"
	"fmt"

	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateUserRequest carries the user creation payload
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserRequest carries the optional fields of a user update
type UpdateUserRequest struct {
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UserService interface {
	CreateUser(req *CreateUserRequest) (*model.User, error)
	UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*model.User, error)
	DeleteUser(id uuid.UUID) error
	GetAllUsers() ([]model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func validRole(role string) bool {
	return role == model.RoleAdmin || role == model.RoleCommon
}

func (s *userService) CreateUser(req *CreateUserRequest) (*model.User, error) {
	if req.Username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if len(req.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}
	if req.Role == "" {
		req.Role = model.RoleCommon
	}
	if !validRole(req.Role) {
		return nil, fmt.Errorf("%w: role must be 'admin' or 'common'", ErrValidation)
	}

	user := &model.User{
		Username: req.Username,
		Role:     req.Role,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: username '%s'", ErrDuplicate, req.Username)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
		}
		return nil, err
	}

	if req.Role != "" {
		if !validRole(req.Role) {
			return nil, fmt.Errorf("%w: role must be 'admin' or 'common'", ErrValidation)
		}
		user.Role = req.Role
	}
	if req.Password != "" {
		if len(req.Password) < 6 {
			return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
		}
		if err := user.SetPassword(req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(id uuid.UUID) error {
	affected, err := s.userRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	return nil
}

func (s *userService) GetAllUsers() ([]model.User, error) {
	return s.userRepo.FindAll()
}
