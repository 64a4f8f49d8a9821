package repositories

import "github.com/Shradhesh0/sweet-shop-mgmt/internal/models"

// SweetRepository defines the interface for sweet data access.
type SweetRepository interface {
	Create(sweet *models.Sweet) error
	GetAll() ([]models.Sweet, error)
	GetByID(id uint) (*models.Sweet, error)
	Search(filter models.SearchFilter) ([]models.Sweet, error)
	Patch(id uint, patch models.SweetPatch) (*models.Sweet, error)
	Delete(id uint) error

	// AdjustQuantity applies a signed delta to a sweet's quantity as a single
	// conditional update: the row is modified only when quantity + delta >= 0.
	// It returns apperrors.ErrAdjustmentRejected when no row matched, which
	// covers both a missing id and a delta that would drive quantity negative;
	// callers distinguish the two with a separate fetch.
	AdjustQuantity(id uint, delta int) (*models.Sweet, error)
}
