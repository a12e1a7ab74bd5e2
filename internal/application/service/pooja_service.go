package service

import (
	"context"
	"strings"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	"github.com/sangkips/temple-billing/internal/domain/enum"
	"github.com/sangkips/temple-billing/internal/domain/repository"
	"github.com/sangkips/temple-billing/pkg/apperror"
	"github.com/shopspring/decimal"
)

// PoojaService maintains the pooja catalog
type PoojaService struct {
	poojaRepo repository.PoojaRepository
}

// NewPoojaService creates a new pooja service
func NewPoojaService(poojaRepo repository.PoojaRepository) *PoojaService {
	return &PoojaService{poojaRepo: poojaRepo}
}

// CreatePoojaInput represents a new catalog entry
type CreatePoojaInput struct {
	Name  string
	Price string
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !price.IsPositive() {
		return decimal.Zero, apperror.NewFieldError("price", "price must be a positive amount")
	}
	return price.Round(2), nil
}

// ListPoojas returns the whole catalog in creation order
func (s *PoojaService) ListPoojas(ctx context.Context) ([]entity.Pooja, error) {
	return s.poojaRepo.List(ctx)
}

// CreatePooja adds a visible catalog entry
func (s *PoojaService) CreatePooja(ctx context.Context, input *CreatePoojaInput) (*entity.Pooja, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewFieldError("pooja_name", "pooja name is required")
	}
	// the donation entry is built into the billing form
	if strings.EqualFold(name, enum.DonationItemName) {
		return nil, apperror.NewFieldError("pooja_name", "Donation is reserved")
	}

	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	existing, err := s.poojaRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Pooja already exists")
	}

	pooja := &entity.Pooja{Name: name, Price: price, Visible: true}
	if err := s.poojaRepo.Create(ctx, pooja); err != nil {
		return nil, err
	}
	return pooja, nil
}

func (s *PoojaService) get(ctx context.Context, id uint) (*entity.Pooja, error) {
	pooja, err := s.poojaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pooja == nil {
		return nil, apperror.NewNotFoundError("Pooja")
	}
	return pooja, nil
}

// UpdatePrice changes a pooja's price; existing bills keep theirs
func (s *PoojaService) UpdatePrice(ctx context.Context, id uint, rawPrice string) (*entity.Pooja, error) {
	price, err := parsePrice(rawPrice)
	if err != nil {
		return nil, err
	}

	pooja, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.poojaRepo.UpdatePrice(ctx, id, price); err != nil {
		return nil, err
	}

	pooja.Price = price
	return pooja, nil
}

// ToggleVisibility hides a visible pooja or shows a hidden one
func (s *PoojaService) ToggleVisibility(ctx context.Context, id uint) (*entity.Pooja, error) {
	pooja, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.poojaRepo.SetVisible(ctx, id, !pooja.Visible); err != nil {
		return nil, err
	}

	pooja.Visible = !pooja.Visible
	return pooja, nil
}

// DeletePooja removes a pooja from the catalog
func (s *PoojaService) DeletePooja(ctx context.Context, id uint) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	return s.poojaRepo.Delete(ctx, id)
}
