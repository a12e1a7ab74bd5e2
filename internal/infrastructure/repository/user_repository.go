package repository

import (
	"context"
	"errors"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	"github.com/sangkips/temple-billing/internal/domain/enum"
	domainRepo "github.com/sangkips/temple-billing/internal/domain/repository"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return conn(ctx, r.db).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	err := conn(ctx, r.db).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	err := conn(ctx, r.db).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	err := conn(ctx, r.db).Order("username ASC").Find(&users).Error
	return users, err
}

func (r *userRepository) CountByRole(ctx context.Context, role enum.UserRole) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *userRepository) UpdateRole(ctx context.Context, id uint, role enum.UserRole) error {
	return conn(ctx, r.db).Model(&entity.User{}).Where("id = ?", id).Update("role", role).Error
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return conn(ctx, r.db).Delete(&entity.User{}, id).Error
}
