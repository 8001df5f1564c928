package entity

import (
	"encoding/json"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mwirigi/salepoint-api/internal/domain/enum"
)

// ErrDraftSubmitting is returned when a draft is mutated or re-submitted
// while a submit is in flight.
var ErrDraftSubmitting = errors.New("draft is being submitted")

// DraftRow is one editable line in a draft document. A blank row has no
// product selected yet; validation catches that at submit time.
type DraftRow struct {
	ProductID  uuid.UUID // uuid.Nil until a product is selected
	Name       string
	Quantity   int
	UnitAmount int64   // cents; price for sales, cost for purchases
	TaxRate    float64 // percent, per row
}

func (r *DraftRow) subtotal() int64 {
	return r.UnitAmount * int64(r.Quantity)
}

func (r *DraftRow) tax() int64 {
	return int64(math.Round(float64(r.subtotal()) * r.TaxRate / 100))
}

// Draft is an in-memory document under construction: a header plus a dynamic
// list of rows with reactively derived aggregates. One generic shape serves
// sales, purchases and purchase returns; the type decides the upstream
// mapping. Drafts are discarded on successful submission, never persisted.
type Draft struct {
	mu sync.Mutex

	ID            uuid.UUID
	Type          enum.DocumentType
	State         enum.DraftState
	PartyID       *uuid.UUID
	Date          time.Time
	Status        enum.DocumentStatus
	PaymentStatus enum.PaymentStatus
	ShippingCost  int64 // cents
	DiscountTotal int64 // cents
	PaidAmount    int64 // cents
	Note          string
	Rows          []*DraftRow
	LastError     string
}

// NewDraft creates a draft of the given type with today's date and one blank
// row, matching the form's initial shape.
func NewDraft(docType enum.DocumentType) *Draft {
	return &Draft{
		ID:    uuid.New(),
		Type:  docType,
		State: enum.DraftStateEditing,
		Date:  time.Now(),
		Rows:  []*DraftRow{blankRow()},
	}
}

func blankRow() *DraftRow {
	return &DraftRow{Quantity: 1}
}

// AppendRow adds a blank row to the end of the draft.
func (d *Draft) AppendRow() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.State == enum.DraftStateSubmitting {
		return ErrDraftSubmitting
	}
	d.Rows = append(d.Rows, blankRow())
	return nil
}

// RemoveRow deletes the row at index. No minimum-row floor is enforced here;
// an empty draft is rejected at submit time instead.
func (d *Draft) RemoveRow(index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.State == enum.DraftStateSubmitting {
		return ErrDraftSubmitting
	}
	if index < 0 || index >= len(d.Rows) {
		return errors.New("row index out of range")
	}
	d.Rows = append(d.Rows[:index], d.Rows[index+1:]...)
	return nil
}

// SetRowProduct selects a product for the row and defaults the unit amount
// and tax rate from the catalog entry. The user may override both afterward.
func (d *Draft) SetRowProduct(index int, product *Product) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.State == enum.DraftStateSubmitting {
		return ErrDraftSubmitting
	}
	if index < 0 || index >= len(d.Rows) {
		return errors.New("row index out of range")
	}

	row := d.Rows[index]
	row.ProductID = product.ID
	row.Name = product.Name
	row.TaxRate = product.TaxRate
	if d.Type == enum.DocumentTypeSale {
		row.UnitAmount = product.SellingPrice
	} else {
		row.UnitAmount = product.BuyingPrice
	}
	return nil
}

// UpdateRow overrides a row's quantity, unit amount and tax rate.
func (d *Draft) UpdateRow(index, quantity int, unitAmount int64, taxRate float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.State == enum.DraftStateSubmitting {
		return ErrDraftSubmitting
	}
	if index < 0 || index >= len(d.Rows) {
		return errors.New("row index out of range")
	}

	row := d.Rows[index]
	row.Quantity = quantity
	row.UnitAmount = unitAmount
	row.TaxRate = taxRate
	return nil
}

// DraftHeader carries the header-level fields of an update, in cents.
type DraftHeader struct {
	PartyID       *uuid.UUID
	Date          time.Time
	Status        enum.DocumentStatus
	PaymentStatus enum.PaymentStatus
	ShippingCost  int64
	DiscountTotal int64
	PaidAmount    int64
	Note          string
}

// SetHeader replaces the draft header.
func (d *Draft) SetHeader(h DraftHeader) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.State == enum.DraftStateSubmitting {
		return ErrDraftSubmitting
	}
	d.PartyID = h.PartyID
	d.Date = h.Date
	d.Status = h.Status
	d.PaymentStatus = h.PaymentStatus
	d.ShippingCost = h.ShippingCost
	d.DiscountTotal = h.DiscountTotal
	d.PaidAmount = h.PaidAmount
	d.Note = h.Note
	return nil
}

// BeginSubmit transitions editing -> submitting.
func (d *Draft) BeginSubmit() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.State == enum.DraftStateSubmitting {
		return ErrDraftSubmitting
	}
	d.State = enum.DraftStateSubmitting
	d.LastError = ""
	return nil
}

// FinishSubmit transitions submitting -> editing. A failed submit records the
// error on the draft so the form can surface it; the rows and header stay
// populated for correction.
func (d *Draft) FinishSubmit(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.State = enum.DraftStateEditing
	if err != nil {
		d.LastError = err.Error()
	}
}

// DraftRowView is the JSON rendering of a row, in decimals.
type DraftRowView struct {
	ProductID  *uuid.UUID `json:"product_id"`
	Name       string     `json:"name,omitempty"`
	Quantity   int        `json:"quantity"`
	UnitAmount float64    `json:"unit_amount"`
	TaxRate    float64    `json:"tax_rate"`
	Subtotal   float64    `json:"subtotal"`
	Tax        float64    `json:"tax"`
	Total      float64    `json:"total"`
}

// DraftView is an immutable snapshot of a draft with derived aggregates.
type DraftView struct {
	ID            uuid.UUID           `json:"id"`
	Type          enum.DocumentType   `json:"type"`
	State         enum.DraftState     `json:"state"`
	PartyID       *uuid.UUID          `json:"party_id"`
	Date          time.Time           `json:"date"`
	Status        enum.DocumentStatus `json:"status"`
	PaymentStatus enum.PaymentStatus  `json:"payment_status"`
	ShippingCost  float64             `json:"shipping_cost"`
	DiscountTotal float64             `json:"discount_total"`
	PaidAmount    float64             `json:"paid_amount"`
	Note          string              `json:"note,omitempty"`
	Rows          []DraftRowView      `json:"rows"`
	Subtotal      float64             `json:"subtotal"`
	TaxTotal      float64             `json:"tax_total"`
	GrandTotal    float64             `json:"grand_total"`
	DueAmount     float64             `json:"due_amount"`
	LastError     string              `json:"last_error,omitempty"`
}

// View returns a snapshot with aggregates recomputed from the full row list
// plus the header-level shipping cost and discount.
func (d *Draft) View() *DraftView {
	d.mu.Lock()
	defer d.mu.Unlock()

	rows := make([]DraftRowView, len(d.Rows))
	var subtotal, taxTotal int64
	for i, row := range d.Rows {
		sub := row.subtotal()
		tax := row.tax()
		subtotal += sub
		taxTotal += tax

		var productID *uuid.UUID
		if row.ProductID != uuid.Nil {
			id := row.ProductID
			productID = &id
		}
		rows[i] = DraftRowView{
			ProductID:  productID,
			Name:       row.Name,
			Quantity:   row.Quantity,
			UnitAmount: Decimal(row.UnitAmount),
			TaxRate:    row.TaxRate,
			Subtotal:   Decimal(sub),
			Tax:        Decimal(tax),
			Total:      Decimal(sub + tax),
		}
	}

	grand := subtotal + taxTotal + d.ShippingCost - d.DiscountTotal

	var partyID *uuid.UUID
	if d.PartyID != nil {
		id := *d.PartyID
		partyID = &id
	}

	return &DraftView{
		ID:            d.ID,
		Type:          d.Type,
		State:         d.State,
		PartyID:       partyID,
		Date:          d.Date,
		Status:        d.Status,
		PaymentStatus: d.PaymentStatus,
		ShippingCost:  Decimal(d.ShippingCost),
		DiscountTotal: Decimal(d.DiscountTotal),
		PaidAmount:    Decimal(d.PaidAmount),
		Note:          d.Note,
		Rows:          rows,
		Subtotal:      Decimal(subtotal),
		TaxTotal:      Decimal(taxTotal),
		GrandTotal:    Decimal(grand),
		DueAmount:     Decimal(grand - d.PaidAmount),
	}
}

// MarshalJSON renders the draft as its snapshot.
func (d *Draft) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.View())
}
