package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mwirigi/salepoint-api/internal/domain/enum"
)

// Document is a read projection of a sale, purchase or purchase return as the
// upstream backend reports it. The backend owns the record; this side only
// ever holds what came back over the wire, so amounts stay decimal here.
type Document struct {
	ID            uuid.UUID           `json:"id"`
	InvoiceNumber string              `json:"invoice_number,omitempty"`
	Reference     string              `json:"reference,omitempty"`
	PartyID       *uuid.UUID          `json:"party_id,omitempty"`
	Date          time.Time           `json:"date"`
	Status        enum.DocumentStatus `json:"status"`
	PaymentStatus enum.PaymentStatus  `json:"payment_status"`
	Subtotal      float64             `json:"subtotal"`
	TaxTotal      float64             `json:"tax_total"`
	DiscountTotal float64             `json:"discount_total"`
	ShippingCost  float64             `json:"shipping_cost"`
	GrandTotal    float64             `json:"grand_total"`
	PaidAmount    float64             `json:"paid_amount"`
	DueAmount     float64             `json:"due_amount"`
}
