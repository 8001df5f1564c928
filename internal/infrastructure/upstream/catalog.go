package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/mwirigi/salepoint-api/internal/domain/entity"
	"github.com/mwirigi/salepoint-api/internal/domain/gateway"
	"github.com/mwirigi/salepoint-api/pkg/pagination"
)

// CatalogClient implements gateway.CatalogGateway and gateway.ContactGateway
// over the upstream REST API.
type CatalogClient struct {
	client *Client
}

// NewCatalogClient creates a catalog client.
func NewCatalogClient(client *Client) *CatalogClient {
	return &CatalogClient{client: client}
}

// listPage is the shape of upstream list endpoints. Some deployments return a
// bare array instead of the paginated wrapper; both are accepted.
type listPage[T any] struct {
	Items      []T                    `json:"items"`
	Pagination *pagination.Pagination `json:"pagination"`
}

func (p *listPage[T]) UnmarshalJSON(data []byte) error {
	var bare []T
	if err := json.Unmarshal(data, &bare); err == nil {
		p.Items = bare
		return nil
	}

	var wrapped struct {
		Items      []T                    `json:"items"`
		Pagination *pagination.Pagination `json:"pagination"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	p.Items = wrapped.Items
	p.Pagination = wrapped.Pagination
	return nil
}

func (p *listPage[T]) total() int64 {
	if p.Pagination != nil {
		return p.Pagination.Total
	}
	return int64(len(p.Items))
}

func listQuery(params *gateway.ListParams) url.Values {
	query := url.Values{}
	if params == nil {
		return query
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.Pagination != nil {
		query.Set("page", strconv.Itoa(params.Pagination.Page))
		query.Set("per_page", strconv.Itoa(params.Pagination.PerPage))
	}
	return query
}

// ListProducts fetches a page of catalog entries.
func (c *CatalogClient) ListProducts(ctx context.Context, params *gateway.ListParams) ([]entity.Product, int64, error) {
	var page listPage[entity.Product]
	if err := c.client.do(ctx, http.MethodGet, "/products", listQuery(params), nil, &page); err != nil {
		return nil, 0, err
	}
	return page.Items, page.total(), nil
}

// GetProduct fetches a single catalog entry.
func (c *CatalogClient) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	if err := c.client.do(ctx, http.MethodGet, "/products/"+id.String(), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListContacts fetches a page of customers or suppliers.
func (c *CatalogClient) ListContacts(ctx context.Context, contactType string, params *gateway.ListParams) ([]entity.Contact, int64, error) {
	query := listQuery(params)
	if contactType != "" {
		query.Set("type", contactType)
	}

	var page listPage[entity.Contact]
	if err := c.client.do(ctx, http.MethodGet, "/contacts", query, nil, &page); err != nil {
		return nil, 0, err
	}
	return page.Items, page.total(), nil
}
