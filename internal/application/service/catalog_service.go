package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mwirigi/salepoint-api/internal/domain/entity"
	"github.com/mwirigi/salepoint-api/internal/domain/gateway"
	"github.com/mwirigi/salepoint-api/pkg/apperror"
	"github.com/mwirigi/salepoint-api/pkg/pagination"
)

// CatalogService proxies product and contact reads to the upstream backend.
// Products are cached so the POS grid and price auto-population don't hit
// the backend on every cart mutation; a successful checkout refreshes the
// cache to reflect the stock decrement.
type CatalogService struct {
	products gateway.CatalogGateway
	contacts gateway.ContactGateway
	pageSize int

	mu    sync.RWMutex
	cache map[uuid.UUID]entity.Product
}

// NewCatalogService creates a new catalog service
func NewCatalogService(products gateway.CatalogGateway, contacts gateway.ContactGateway, pageSize int) *CatalogService {
	if pageSize < 1 {
		pageSize = 200
	}
	return &CatalogService{
		products: products,
		contacts: contacts,
		pageSize: pageSize,
		cache:    make(map[uuid.UUID]entity.Product),
	}
}

// ListProducts proxies a product list call and folds the results into the
// cache.
func (s *CatalogService) ListProducts(ctx context.Context, params *gateway.ListParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params == nil {
		params = &gateway.ListParams{}
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	items, total, err := s.products.ListProducts(ctx, params)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for _, product := range items {
		s.cache[product.ID] = product
	}
	s.mu.Unlock()

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// GetProduct resolves a product from the cache, falling back to the backend.
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	s.mu.RLock()
	product, ok := s.cache[id]
	s.mu.RUnlock()
	if ok {
		return &product, nil
	}

	fetched, err := s.products.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if fetched == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	s.mu.Lock()
	s.cache[fetched.ID] = *fetched
	s.mu.Unlock()
	return fetched, nil
}

// Refresh replaces the cache with a fresh page of the catalog.
func (s *CatalogService) Refresh(ctx context.Context) error {
	params := &gateway.ListParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: s.pageSize},
	}

	items, _, err := s.products.ListProducts(ctx, params)
	if err != nil {
		return err
	}

	cache := make(map[uuid.UUID]entity.Product, len(items))
	for _, product := range items {
		cache[product.ID] = product
	}

	s.mu.Lock()
	s.cache = cache
	s.mu.Unlock()
	return nil
}

// ListContacts proxies a contact list call. Contacts are not cached.
func (s *CatalogService) ListContacts(ctx context.Context, contactType string, params *gateway.ListParams) (*pagination.PaginatedResult[entity.Contact], error) {
	if params == nil {
		params = &gateway.ListParams{}
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	items, total, err := s.contacts.ListContacts(ctx, contactType, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}
