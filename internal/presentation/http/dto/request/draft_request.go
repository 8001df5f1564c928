package request

import "github.com/google/uuid"

// CreateDraftRequest starts a new draft document
type CreateDraftRequest struct {
	Type string `json:"type" binding:"required,oneof=sale purchase purchase_return"`
}

// SetRowProductRequest selects a product for a draft row
type SetRowProductRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// UpdateRowRequest overrides a draft row's quantity, amount and tax rate
type UpdateRowRequest struct {
	Quantity   int     `json:"quantity" binding:"min=1"`
	UnitAmount float64 `json:"unit_amount" binding:"min=0"`
	TaxRate    float64 `json:"tax_rate" binding:"min=0,max=100"`
}

// SetHeaderRequest replaces a draft's header fields
type SetHeaderRequest struct {
	PartyID       *uuid.UUID `json:"party_id"`
	Date          string     `json:"date" binding:"required"` // YYYY-MM-DD
	Status        string     `json:"status" binding:"omitempty,oneof=pending ordered completed"`
	PaymentStatus string     `json:"payment_status" binding:"omitempty,oneof=unpaid partial paid"`
	ShippingCost  float64    `json:"shipping_cost" binding:"min=0"`
	DiscountTotal float64    `json:"discount_total" binding:"min=0"`
	PaidAmount    float64    `json:"paid_amount" binding:"min=0"`
	Note          string     `json:"note"`
}

// UpdateStatusRequest updates a submitted document's status upstream
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending ordered completed"`
}
