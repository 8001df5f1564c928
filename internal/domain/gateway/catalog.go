package gateway

import (
	"context"

	"github.com/google/uuid"
	"github.com/mwirigi/salepoint-api/internal/domain/entity"
	"github.com/mwirigi/salepoint-api/pkg/pagination"
)

// ListParams filters an upstream list call.
type ListParams struct {
	Search     string
	Pagination *pagination.PaginationParams
}

// CatalogGateway reads products from the upstream backend.
type CatalogGateway interface {
	ListProducts(ctx context.Context, params *ListParams) ([]entity.Product, int64, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}

// ContactGateway reads customers and suppliers from the upstream backend.
type ContactGateway interface {
	ListContacts(ctx context.Context, contactType string, params *ListParams) ([]entity.Contact, int64, error)
}
