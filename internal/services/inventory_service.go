package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Shradhesh0/sweet-shop-mgmt/internal/apperrors"
	"github.com/Shradhesh0/sweet-shop-mgmt/internal/models"
	"github.com/Shradhesh0/sweet-shop-mgmt/internal/repositories"
)

// EventPublisher publishes inventory events to the message broker.
// *rabbitmq.Client satisfies it; tests substitute a mock.
type EventPublisher interface {
	PublishInventoryEvent(event map[string]interface{}) error
}

// InventoryService handles purchase and restock of sweets. All quantity
// mutations go through the repository's atomic conditional update, so the
// service never holds locks of its own.
type InventoryService struct {
	sweetRepo repositories.SweetRepository
	publisher EventPublisher
}

// NewInventoryService creates a new InventoryService. publisher may be nil,
// in which case events are skipped.
func NewInventoryService(sweetRepo repositories.SweetRepository, publisher EventPublisher) *InventoryService {
	return &InventoryService{
		sweetRepo: sweetRepo,
		publisher: publisher,
	}
}

// PurchaseResult carries the outcome of a successful purchase.
type PurchaseResult struct {
	Sweet      *models.Sweet
	Purchased  int
	TotalPrice float64
}

// Purchase decrements a sweet's stock by quantity. The stock check against
// the fetched row is advisory; the conditional update is what actually
// prevents quantity from going negative. When the update is rejected after
// the advisory check passed (a concurrent purchase won the race), the row is
// re-read so the caller still gets an accurate insufficient-stock report.
// The total price is computed from the unit price at the time of the request.
func (s *InventoryService) Purchase(id uint, quantity int, actorID uint) (*PurchaseResult, error) {
	sweet, err := s.sweetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if sweet.Quantity < quantity {
		return nil, &apperrors.InsufficientStockError{
			Available: sweet.Quantity,
			Requested: quantity,
		}
	}

	updated, err := s.sweetRepo.AdjustQuantity(id, -quantity)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdjustmentRejected) {
			return nil, s.explainRejection(id, quantity)
		}
		return nil, err
	}

	result := &PurchaseResult{
		Sweet:      updated,
		Purchased:  quantity,
		TotalPrice: sweet.Price * float64(quantity),
	}

	s.publishEvent("sweet.purchased", updated, quantity, result.TotalPrice, actorID)
	return result, nil
}

// Restock increments a sweet's stock by quantity.
func (s *InventoryService) Restock(id uint, quantity int, actorID uint) (*models.Sweet, error) {
	if _, err := s.sweetRepo.GetByID(id); err != nil {
		return nil, err
	}

	updated, err := s.sweetRepo.AdjustQuantity(id, quantity)
	if err != nil {
		return nil, err
	}

	s.publishEvent("sweet.restocked", updated, quantity, 0, actorID)
	return updated, nil
}

// explainRejection re-reads the row after a rejected adjustment to report the
// precise cause: gone means not found, otherwise a concurrent purchase
// shrank the stock below the requested amount.
func (s *InventoryService) explainRejection(id uint, requested int) error {
	current, err := s.sweetRepo.GetByID(id)
	if err != nil {
		return err
	}
	return &apperrors.InsufficientStockError{
		Available: current.Quantity,
		Requested: requested,
	}
}

// publishEvent emits an inventory event. Publish failures are logged and never
// fail the request.
func (s *InventoryService) publishEvent(eventType string, sweet *models.Sweet, quantity int, totalPrice float64, actorID uint) {
	if s.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"event_id":    uuid.New().String(),
		"type":        eventType,
		"sweet_id":    sweet.ID,
		"name":        sweet.Name,
		"quantity":    quantity,
		"actor_id":    actorID,
		"occurred_at": time.Now().Format(time.RFC3339),
	}
	if totalPrice > 0 {
		event["total_price"] = totalPrice
	}

	if err := s.publisher.PublishInventoryEvent(event); err != nil {
		log.Printf("Warning: failed to publish %s event for sweet %d: %v", eventType, sweet.ID, err)
	}
}
