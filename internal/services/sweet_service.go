package services

import (
	"github.com/Shradhesh0/sweet-shop-mgmt/internal/apperrors"
	"github.com/Shradhesh0/sweet-shop-mgmt/internal/models"
	"github.com/Shradhesh0/sweet-shop-mgmt/internal/repositories"
)

// SweetService handles business logic for the sweet catalog.
type SweetService struct {
	repo repositories.SweetRepository
}

// NewSweetService creates a new SweetService.
func NewSweetService(repo repositories.SweetRepository) *SweetService {
	return &SweetService{repo: repo}
}

// GetAllSweets retrieves every sweet, newest first.
func (s *SweetService) GetAllSweets() ([]models.Sweet, error) {
	return s.repo.GetAll()
}

// GetSweetByID retrieves a single sweet by its ID.
func (s *SweetService) GetSweetByID(id uint) (*models.Sweet, error) {
	return s.repo.GetByID(id)
}

// SearchSweets retrieves sweets matching the filter, newest first.
func (s *SweetService) SearchSweets(filter models.SearchFilter) ([]models.Sweet, error) {
	return s.repo.Search(filter)
}

// CreateSweet creates a new sweet. Field validation happens at the handler
// boundary before this is reached.
func (s *SweetService) CreateSweet(sweet *models.Sweet) error {
	return s.repo.Create(sweet)
}

// UpdateSweet applies a sparse patch to a sweet. An empty patch is rejected
// before any store access.
func (s *SweetService) UpdateSweet(id uint, patch models.SweetPatch) (*models.Sweet, error) {
	if patch.Empty() {
		return nil, apperrors.ErrEmptyPatch
	}
	return s.repo.Patch(id, patch)
}

// DeleteSweet removes a sweet by its ID.
func (s *SweetService) DeleteSweet(id uint) error {
	return s.repo.Delete(id)
}
