package upstream

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/mwirigi/salepoint-api/internal/domain/entity"
	"github.com/mwirigi/salepoint-api/internal/domain/enum"
	"github.com/mwirigi/salepoint-api/internal/domain/gateway"
)

// DocumentClient implements gateway.DocumentGateway over the upstream REST API.
type DocumentClient struct {
	client *Client
}

// NewDocumentClient creates a document client.
func NewDocumentClient(client *Client) *DocumentClient {
	return &DocumentClient{client: client}
}

// CreateDocument posts a document to the resource the type maps to. The party
// and unit-amount keys differ per type (customer_id/unit_price for sales,
// supplier_id/unit_cost for purchases and returns), so the body is assembled
// dynamically.
func (c *DocumentClient) CreateDocument(ctx context.Context, input *gateway.DocumentInput) (*entity.Document, error) {
	items := make([]map[string]any, len(input.Items))
	for i, item := range input.Items {
		items[i] = map[string]any{
			"product_id":            item.ProductID,
			"quantity":              item.Quantity,
			input.Type.AmountField(): item.UnitAmount,
			"tax":                   item.Tax,
		}
	}

	body := map[string]any{
		input.Type.PartyField(): input.PartyID,
		"date":                  input.Date.Format("2006-01-02"),
		"status":                input.Status.String(),
		"payment_status":        input.PaymentStatus.String(),
		"paid_amount":           input.PaidAmount,
		"subtotal":              input.Subtotal,
		"tax_total":             input.TaxTotal,
		"discount_total":        input.DiscountTotal,
		"shipping_cost":         input.ShippingCost,
		"grand_total":           input.GrandTotal,
		"payment_method":        input.PaymentMethod,
		"notes":                 input.Notes,
		"items":                 items,
	}

	var doc entity.Document
	if err := c.client.do(ctx, http.MethodPost, "/"+input.Type.Resource(), nil, body, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteDocument removes a document upstream.
func (c *DocumentClient) DeleteDocument(ctx context.Context, docType enum.DocumentType, id uuid.UUID) error {
	return c.client.do(ctx, http.MethodDelete, "/"+docType.Resource()+"/"+id.String(), nil, nil, nil)
}

// UpdateDocumentStatus updates a document's status upstream.
func (c *DocumentClient) UpdateDocumentStatus(ctx context.Context, docType enum.DocumentType, id uuid.UUID, status enum.DocumentStatus) error {
	body := map[string]any{"status": status.String()}
	return c.client.do(ctx, http.MethodPut, "/"+docType.Resource()+"/"+id.String()+"/status", nil, body, nil)
}
