package repository

import (
	"context"

	"shoecard/models"
)

// CatalogRepositoryInterface defines the contract for reading shoe listings
type CatalogRepositoryInterface interface {
	LoadShoes(ctx context.Context) ([]models.ShoeRecord, error)
}
