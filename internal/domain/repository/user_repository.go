package repository

import (
	"context"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	"github.com/sangkips/temple-billing/internal/domain/enum"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	CountByRole(ctx context.Context, role enum.UserRole) (int64, error)
	UpdateRole(ctx context.Context, id uint, role enum.UserRole) error
	Delete(ctx context.Context, id uint) error
}
