package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Shradhesh0/sweet-shop-mgmt/internal/apperrors"
	"github.com/Shradhesh0/sweet-shop-mgmt/internal/models"
	"github.com/Shradhesh0/sweet-shop-mgmt/internal/services"
)

func TestSweetService_UpdateSweet_EmptyPatchRejected(t *testing.T) {
	mockRepo := new(MockSweetRepository)
	svc := services.NewSweetService(mockRepo)

	_, err := svc.UpdateSweet(1, models.SweetPatch{})
	assert.ErrorIs(t, err, apperrors.ErrEmptyPatch)

	// Rejected before any store access.
	mockRepo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything)
}

func TestSweetService_UpdateSweet(t *testing.T) {
	mockRepo := new(MockSweetRepository)
	svc := services.NewSweetService(mockRepo)

	name := "Rasgulla"
	patch := models.SweetPatch{Name: &name}
	updated := &models.Sweet{ID: 1, Name: name, Category: "indian", Price: 2.5, Quantity: 10}

	mockRepo.On("Patch", uint(1), patch).Return(updated, nil).Once()

	sweet, err := svc.UpdateSweet(1, patch)
	assert.NoError(t, err)
	assert.Equal(t, "Rasgulla", sweet.Name)
	mockRepo.AssertExpectations(t)
}

func TestSweetService_CreateAndList(t *testing.T) {
	mockRepo := new(MockSweetRepository)
	svc := services.NewSweetService(mockRepo)

	sweet := &models.Sweet{Name: "Barfi", Category: "indian", Price: 3, Quantity: 20}
	mockRepo.On("Create", sweet).Return(nil).Once()
	assert.NoError(t, svc.CreateSweet(sweet))

	mockRepo.On("GetAll").Return([]models.Sweet{*sweet}, nil).Once()
	sweets, err := svc.GetAllSweets()
	assert.NoError(t, err)
	assert.Len(t, sweets, 1)
	mockRepo.AssertExpectations(t)
}

func TestSweetService_Search(t *testing.T) {
	mockRepo := new(MockSweetRepository)
	svc := services.NewSweetService(mockRepo)

	min := 2.0
	filter := models.SearchFilter{Category: "chocolate", MinPrice: &min}
	mockRepo.On("Search", filter).Return([]models.Sweet{}, nil).Once()

	sweets, err := svc.SearchSweets(filter)
	assert.NoError(t, err)
	assert.Empty(t, sweets)
	mockRepo.AssertExpectations(t)
}
