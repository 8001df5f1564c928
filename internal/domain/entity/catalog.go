package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Product is a read projection of an upstream catalog entry. The gateway never
// owns products; stock levels and prices are whatever the backend last reported.
type Product struct {
	ID           uuid.UUID
	Name         string
	Code         string
	Quantity     int
	BuyingPrice  int64 // cents
	SellingPrice int64 // cents
	TaxRate      float64
}

// InStock reports whether the backend last reported stock for the product.
// This is a display hint only; stock sufficiency is enforced upstream at
// document creation.
func (p *Product) InStock() bool {
	return p.Quantity > 0
}

type productJSON struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	Quantity     int       `json:"quantity"`
	BuyingPrice  float64   `json:"buying_price"`
	SellingPrice float64   `json:"selling_price"`
	TaxRate      float64   `json:"tax_rate"`
	InStock      bool      `json:"in_stock"`
}

// MarshalJSON renders prices as decimals
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{
		ID:           p.ID,
		Name:         p.Name,
		Code:         p.Code,
		Quantity:     p.Quantity,
		BuyingPrice:  Decimal(p.BuyingPrice),
		SellingPrice: Decimal(p.SellingPrice),
		TaxRate:      p.TaxRate,
		InStock:      p.InStock(),
	})
}

// UnmarshalJSON accepts the upstream decimal representation
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw productJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.ID = raw.ID
	p.Name = raw.Name
	p.Code = raw.Code
	p.Quantity = raw.Quantity
	p.BuyingPrice = Cents(raw.BuyingPrice)
	p.SellingPrice = Cents(raw.SellingPrice)
	p.TaxRate = raw.TaxRate
	return nil
}

// Contact is a read projection of an upstream customer or supplier.
type Contact struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
	Phone string    `json:"phone,omitempty"`
	Type  string    `json:"type"` // "customer" or "supplier"
}
