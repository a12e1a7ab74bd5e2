package repository

import (
	"context"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PoojaRepository defines the interface for catalog data operations
type PoojaRepository interface {
	Create(ctx context.Context, pooja *entity.Pooja) error
	GetByID(ctx context.Context, id uint) (*entity.Pooja, error)
	// GetByName looks a pooja up by exact name regardless of visibility
	GetByName(ctx context.Context, name string) (*entity.Pooja, error)
	List(ctx context.Context) ([]entity.Pooja, error)
	ListVisible(ctx context.Context) ([]entity.Pooja, error)
	UpdatePrice(ctx context.Context, id uint, price decimal.Decimal) error
	SetVisible(ctx context.Context, id uint, visible bool) error
	Delete(ctx context.Context, id uint) error
}
