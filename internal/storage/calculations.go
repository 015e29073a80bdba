package storage

import (
	"context"
	"errors"

	"calc-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalculationRepository persists Calculation entities.
type CalculationRepository struct {
	db *gorm.DB
}

func NewCalculationRepository(db *gorm.DB) *CalculationRepository {
	return &CalculationRepository{db: db}
}

// Create inserts calc. A UserID referencing no stored user fails with
// ErrOwnerNotFound.
func (r *CalculationRepository) Create(ctx context.Context, calc *models.Calculation) error {
	if err := r.db.WithContext(ctx).Create(calc).Error; err != nil {
		return foreignKeyViolation(err)
	}
	return nil
}

func (r *CalculationRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Calculation, error) {
	var calc models.Calculation
	err := r.db.WithContext(ctx).First(&calc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Calculation{}, ErrNotFound
	}
	return calc, err
}

func (r *CalculationRepository) List(ctx context.Context, offset, limit int) ([]models.Calculation, error) {
	var calcs []models.Calculation
	err := r.db.WithContext(ctx).
		Order("created_at").
		Offset(offset).
		Limit(limit).
		Find(&calcs).Error
	return calcs, err
}

func (r *CalculationRepository) Update(ctx context.Context, calc *models.Calculation) error {
	if err := r.db.WithContext(ctx).Save(calc).Error; err != nil {
		return foreignKeyViolation(err)
	}
	return nil
}

func (r *CalculationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Calculation{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
