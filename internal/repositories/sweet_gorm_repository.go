package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Shradhesh0/sweet-shop-mgmt/internal/apperrors"
	"github.com/Shradhesh0/sweet-shop-mgmt/internal/models"
)

// GORMSweetRepository is a GORM implementation of SweetRepository.
type GORMSweetRepository struct {
	db *gorm.DB
}

// NewGORMSweetRepository creates a new instance of GORMSweetRepository.
func NewGORMSweetRepository(db *gorm.DB) *GORMSweetRepository {
	return &GORMSweetRepository{db: db}
}

// Create inserts a new sweet. The store assigns the numeric ID.
func (r *GORMSweetRepository) Create(sweet *models.Sweet) error {
	if err := r.db.Create(sweet).Error; err != nil {
		return fmt.Errorf("failed to create sweet: %w", err)
	}
	return nil
}

// GetAll retrieves every sweet, most recently created first. The result is
// never nil so an empty inventory renders as a JSON array.
func (r *GORMSweetRepository) GetAll() ([]models.Sweet, error) {
	sweets := make([]models.Sweet, 0)
	if err := r.db.Order("created_at DESC, id DESC").Find(&sweets).Error; err != nil {
		return nil, fmt.Errorf("failed to get all sweets: %w", err)
	}
	return sweets, nil
}

// GetByID retrieves a single sweet by its ID.
func (r *GORMSweetRepository) GetByID(id uint) (*models.Sweet, error) {
	var sweet models.Sweet
	if err := r.db.First(&sweet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSweetNotFound
		}
		return nil, fmt.Errorf("failed to get sweet by ID %d: %w", id, err)
	}
	return &sweet, nil
}

// Search retrieves sweets matching the filter, most recently created first.
// Filters combine conjunctively; absent filters are omitted from the
// predicate. Name and category match partially and case-insensitively, the
// price bounds are inclusive. LOWER(...) LIKE is used instead of ILIKE so the
// same query runs on both Postgres and SQLite.
func (r *GORMSweetRepository) Search(filter models.SearchFilter) ([]models.Sweet, error) {
	query := r.db.Model(&models.Sweet{})

	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}
	if filter.Category != "" {
		query = query.Where("LOWER(category) LIKE LOWER(?)", "%"+filter.Category+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	sweets := make([]models.Sweet, 0)
	if err := query.Order("created_at DESC, id DESC").Find(&sweets).Error; err != nil {
		return nil, fmt.Errorf("failed to search sweets: %w", err)
	}
	return sweets, nil
}

// Patch updates only the fields present in the patch and returns the updated
// row. The SET clause is built from the patch, so absent fields are never
// touched. GORM refreshes updated_at as part of the update.
func (r *GORMSweetRepository) Patch(id uint, patch models.SweetPatch) (*models.Sweet, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return nil, apperrors.ErrEmptyPatch
	}

	res := r.db.Model(&models.Sweet{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update sweet %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrSweetNotFound
	}
	return r.GetByID(id)
}

// Delete removes a sweet by its ID.
func (r *GORMSweetRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Sweet{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete sweet %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrSweetNotFound
	}
	return nil
}

// AdjustQuantity applies the signed delta as a single conditional UPDATE:
//
//	SET quantity = quantity + ?, updated_at = now()
//	WHERE id = ? AND quantity + ? >= 0
//
// The check and the write happen in one statement, so the store's row-level
// locking guarantees quantity never goes negative under concurrent callers.
// No application-level locking is involved.
func (r *GORMSweetRepository) AdjustQuantity(id uint, delta int) (*models.Sweet, error) {
	res := r.db.Model(&models.Sweet{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to adjust quantity of sweet %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrAdjustmentRejected
	}
	return r.GetByID(id)
}
