package service

import (
	"context"
	"time"

	"shoecard/models"
)

// CardServiceInterface defines the contract for building card view models
type CardServiceInterface interface {
	BuildViewModel(shoe models.ShoeRecord, now time.Time) models.ViewModel
	BuildViewModels(ctx context.Context, shoes []models.ShoeRecord, now time.Time) ([]models.ViewModel, error)
}
