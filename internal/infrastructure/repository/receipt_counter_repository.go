package repository

import (
	"context"
	"time"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	domainRepo "github.com/sangkips/temple-billing/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type receiptCounterRepository struct {
	db *gorm.DB
}

// NewReceiptCounterRepository creates a new receipt counter repository
func NewReceiptCounterRepository(db *gorm.DB) domainRepo.ReceiptCounterRepository {
	return &receiptCounterRepository{db: db}
}

// Increment must run inside a transaction: the UPDATE takes the row lock
// that keeps the read-back consistent.
func (r *receiptCounterRepository) Increment(ctx context.Context, series string) (int64, bool, error) {
	db := conn(ctx, r.db)

	res := db.Model(&entity.ReceiptCounter{}).
		Where("series = ?", series).
		Updates(map[string]any{
			"last_serial": gorm.Expr("last_serial + 1"),
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return 0, false, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, false, nil
	}

	var counter entity.ReceiptCounter
	if err := db.Where("series = ?", series).Take(&counter).Error; err != nil {
		return 0, false, err
	}
	return counter.LastSerial, true, nil
}

func (r *receiptCounterRepository) Seed(ctx context.Context, series string, lastSerial int64) error {
	return conn(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entity.ReceiptCounter{Series: series, LastSerial: lastSerial}).Error
}
