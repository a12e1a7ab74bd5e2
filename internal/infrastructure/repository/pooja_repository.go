package repository

import (
	"context"
	"errors"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	domainRepo "github.com/sangkips/temple-billing/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type poojaRepository struct {
	db *gorm.DB
}

// NewPoojaRepository creates a new pooja repository
func NewPoojaRepository(db *gorm.DB) domainRepo.PoojaRepository {
	return &poojaRepository{db: db}
}

func (r *poojaRepository) Create(ctx context.Context, pooja *entity.Pooja) error {
	return conn(ctx, r.db).Create(pooja).Error
}

func (r *poojaRepository) GetByID(ctx context.Context, id uint) (*entity.Pooja, error) {
	var pooja entity.Pooja
	err := conn(ctx, r.db).First(&pooja, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &pooja, err
}

func (r *poojaRepository) GetByName(ctx context.Context, name string) (*entity.Pooja, error) {
	var pooja entity.Pooja
	err := conn(ctx, r.db).First(&pooja, "pooja_name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &pooja, err
}

func (r *poojaRepository) List(ctx context.Context) ([]entity.Pooja, error) {
	var poojas []entity.Pooja
	err := conn(ctx, r.db).Order("id ASC").Find(&poojas).Error
	return poojas, err
}

func (r *poojaRepository) ListVisible(ctx context.Context) ([]entity.Pooja, error) {
	var poojas []entity.Pooja
	err := conn(ctx, r.db).Where("visible = ?", true).Order("pooja_name ASC").Find(&poojas).Error
	return poojas, err
}

func (r *poojaRepository) UpdatePrice(ctx context.Context, id uint, price decimal.Decimal) error {
	return conn(ctx, r.db).Model(&entity.Pooja{}).Where("id = ?", id).Update("price", price).Error
}

func (r *poojaRepository) SetVisible(ctx context.Context, id uint, visible bool) error {
	return conn(ctx, r.db).Model(&entity.Pooja{}).Where("id = ?", id).Update("visible", visible).Error
}

func (r *poojaRepository) Delete(ctx context.Context, id uint) error {
	return conn(ctx, r.db).Delete(&entity.Pooja{}, "id = ?", id).Error
}
