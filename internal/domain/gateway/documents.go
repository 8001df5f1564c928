package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mwirigi/salepoint-api/internal/domain/entity"
	"github.com/mwirigi/salepoint-api/internal/domain/enum"
)

// DocumentItemInput is one line of a document creation call, in the decimal
// amounts the upstream contract expects.
type DocumentItemInput struct {
	ProductID  uuid.UUID
	Quantity   int
	UnitAmount float64
	Tax        float64
}

// DocumentInput is the payload for creating a sale, purchase or purchase
// return upstream. The document type decides the target resource and the
// wire names for the party and unit-amount fields.
type DocumentInput struct {
	Type          enum.DocumentType
	PartyID       *uuid.UUID
	Date          time.Time
	Status        enum.DocumentStatus
	PaymentStatus enum.PaymentStatus
	Subtotal      float64
	TaxTotal      float64
	DiscountTotal float64
	ShippingCost  float64
	GrandTotal    float64
	PaidAmount    float64
	PaymentMethod string
	Notes         string
	Items         []DocumentItemInput
}

// DocumentGateway is the upstream surface for document ownership. Creation is
// all-or-nothing: the backend either creates the whole document (including
// stock adjustment) or rejects it.
type DocumentGateway interface {
	CreateDocument(ctx context.Context, input *DocumentInput) (*entity.Document, error)
	DeleteDocument(ctx context.Context, docType enum.DocumentType, id uuid.UUID) error
	UpdateDocumentStatus(ctx context.Context, docType enum.DocumentType, id uuid.UUID, status enum.DocumentStatus) error
}
