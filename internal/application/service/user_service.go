package service

import (
	"context"
	"strings"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	"github.com/sangkips/temple-billing/internal/domain/enum"
	"github.com/sangkips/temple-billing/internal/domain/repository"
	"github.com/sangkips/temple-billing/pkg/apperror"
	"github.com/sangkips/temple-billing/pkg/utils"
)

const minPasswordLength = 6

// UserService manages counter staff and administrator accounts
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents a new account
type CreateUserInput struct {
	Username string
	Password string
	Role     string
}

// ListUsers returns every account ordered by username
func (s *UserService) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []entity.User{}
	}
	return users, nil
}

// GetUser returns a user by ID
func (s *UserService) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// CreateUser adds an account; the role defaults to staff
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	var fieldErrors []apperror.FieldError

	username := strings.TrimSpace(input.Username)
	if username == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "username", Message: "username is required"})
	}
	if len(input.Password) < minPasswordLength {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}
	role, err := enum.ParseUserRole(strings.ToLower(strings.TrimSpace(input.Role)))
	if err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "role", Message: "role must be admin or staff"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Username already taken")
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{Username: username, Password: hash, Role: role}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// keepsAnAdmin fails when user is the last administrator
func (s *UserService) keepsAnAdmin(ctx context.Context, user *entity.User) error {
	if !user.IsAdmin() {
		return nil
	}
	admins, err := s.userRepo.CountByRole(ctx, enum.UserRoleAdmin)
	if err != nil {
		return err
	}
	if admins <= 1 {
		return apperror.NewBadRequestError("At least one admin account is required")
	}
	return nil
}

// UpdateRole changes an account's role
func (s *UserService) UpdateRole(ctx context.Context, id uint, rawRole string) (*entity.User, error) {
	role, err := enum.ParseUserRole(strings.ToLower(strings.TrimSpace(rawRole)))
	if err != nil || rawRole == "" {
		return nil, apperror.NewFieldError("role", "role must be admin or staff")
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role == role {
		return user, nil
	}
	if err := s.keepsAnAdmin(ctx, user); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}
	user.Role = role
	return user, nil
}

// DeleteUser removes an account. Bills keep the username they were saved with.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if err := s.keepsAnAdmin(ctx, user); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
