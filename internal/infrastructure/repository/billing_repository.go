package repository

import (
	"context"
	"errors"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	domainRepo "github.com/sangkips/temple-billing/internal/domain/repository"
	"gorm.io/gorm"
)

type billingRepository struct {
	db *gorm.DB
}

// NewBillingRepository creates a new billing repository
func NewBillingRepository(db *gorm.DB) domainRepo.BillingRepository {
	return &billingRepository{db: db}
}

func (r *billingRepository) Create(ctx context.Context, billing *entity.Billing) error {
	return conn(ctx, r.db).Create(billing).Error
}

func (r *billingRepository) GetByID(ctx context.Context, id uint) (*entity.Billing, error) {
	var billing entity.Billing
	err := conn(ctx, r.db).First(&billing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &billing, err
}

func (r *billingRepository) LastReceiptNo(ctx context.Context, prefix string) (string, error) {
	var billing entity.Billing
	err := conn(ctx, r.db).
		Select("id", "receipt_no").
		Where("receipt_no LIKE ?", prefix+"%").
		Order("id DESC").
		Take(&billing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return billing.ReceiptNo, nil
}

func (r *billingRepository) List(ctx context.Context, params *domainRepo.BillingFilterParams) ([]entity.Billing, int64, error) {
	var billings []entity.Billing
	var total int64

	query := conn(ctx, r.db).Model(&entity.Billing{})
	if params.Username != "" {
		query = query.Where("username = ?", params.Username)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("id DESC").
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.PerPage).
		Find(&billings).Error

	return billings, total, err
}

func (r *billingRepository) Search(ctx context.Context, filter *domainRepo.ReportFilter) ([]entity.Billing, error) {
	var billings []entity.Billing

	query := conn(ctx, r.db).Where("bill_date BETWEEN ? AND ?", filter.From, filter.To)
	if filter.PoojaName != "" {
		query = query.Where("pooja_name = ?", filter.PoojaName)
	}
	if filter.Username != "" {
		query = query.Where("username = ?", filter.Username)
	}
	if filter.PaymentMode != "" {
		query = query.Where("LOWER(payment_mode) = LOWER(?)", filter.PaymentMode)
	}

	err := query.Order("id ASC").Find(&billings).Error
	return billings, err
}

func (r *billingRepository) DistinctPoojaNames(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "pooja_name")
}

func (r *billingRepository) DistinctUsernames(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "username")
}

func (r *billingRepository) DistinctPaymentModes(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "payment_mode")
}

func (r *billingRepository) distinct(ctx context.Context, column string) ([]string, error) {
	var values []string
	err := conn(ctx, r.db).
		Model(&entity.Billing{}).
		Distinct(column).
		Where(column+" <> ''").
		Order(column).
		Pluck(column, &values).Error
	return values, err
}
