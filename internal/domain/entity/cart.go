package entity

import (
	"encoding/json"
	"errors"
	"math"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrCartEmpty is returned when a checkout is attempted on an empty cart.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrCheckoutInFlight is returned when a checkout is already pending.
	ErrCheckoutInFlight = errors.New("checkout already in progress")
)

// LineItem is one product row in the cart. Subtotal, Tax and Total are
// recomputed on every mutation, never carried forward.
type LineItem struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Name      string
	Quantity  int
	UnitPrice int64 // cents
	Subtotal  int64 // cents, Quantity * UnitPrice
	Tax       int64 // cents, derived from the cart tax rate
	Total     int64 // cents, Subtotal + Tax
}

func (li *LineItem) recompute(taxRate float64) {
	li.Subtotal = li.UnitPrice * int64(li.Quantity)
	li.Tax = int64(math.Round(float64(li.Subtotal) * taxRate / 100))
	li.Total = li.Subtotal + li.Tax
}

// Cart is the in-memory point-of-sale basket for one session. Mutations are
// pure in-memory state changes and cannot fail; all aggregates are derived
// from the line items on demand. The tax rate is a session default and
// survives Clear.
type Cart struct {
	mu          sync.Mutex
	items       []*LineItem
	customerID  *uuid.UUID
	discount    int64 // cents
	note        string
	taxRate     float64 // percent applied per line
	checkingOut bool
}

// NewCart creates an empty cart with the session's default tax rate.
func NewCart(taxRate float64) *Cart {
	return &Cart{taxRate: taxRate}
}

// AddItem adds quantity of a product. An existing row for the same product
// absorbs the quantity; otherwise a new row is appended. Insertion order is
// display order.
func (c *Cart) AddItem(product *Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if item.ProductID == product.ID {
			item.Quantity += quantity
			item.recompute(c.taxRate)
			return
		}
	}

	item := &LineItem{
		ID:        uuid.New(),
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  quantity,
		UnitPrice: product.SellingPrice,
	}
	item.recompute(c.taxRate)
	c.items = append(c.items, item)
}

// UpdateQuantity sets a row's quantity. A quantity of zero or less removes
// the row. Returns false when no row has the given ID.
func (c *Cart) UpdateQuantity(itemID uuid.UUID, quantity int) bool {
	if quantity <= 0 {
		return c.RemoveItem(itemID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if item.ID == itemID {
			item.Quantity = quantity
			item.recompute(c.taxRate)
			return true
		}
	}
	return false
}

// RemoveItem deletes a row. Other rows are unaffected.
func (c *Cart) RemoveItem(itemID uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// SetCustomer sets the customer reference. Nil means walk-in.
func (c *Cart) SetCustomer(customerID *uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customerID = customerID
}

// SetDiscount sets the flat discount in cents.
func (c *Cart) SetDiscount(discount int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.discount = discount
}

// SetNote sets the free-text note.
func (c *Cart) SetNote(note string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.note = note
}

// Len returns the number of line items.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Subtotal returns the sum of line subtotals in cents.
func (c *Cart) Subtotal() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotalLocked()
}

func (c *Cart) subtotalLocked() int64 {
	var sum int64
	for _, item := range c.items {
		sum += item.Subtotal
	}
	return sum
}

// TaxTotal returns the sum of line taxes in cents.
func (c *Cart) TaxTotal() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.taxTotalLocked()
}

func (c *Cart) taxTotalLocked() int64 {
	var sum int64
	for _, item := range c.items {
		sum += item.Tax
	}
	return sum
}

// GrandTotal returns subtotal + tax - discount in cents. A discount larger
// than subtotal + tax yields a negative total; no clamping.
func (c *Cart) GrandTotal() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotalLocked() + c.taxTotalLocked() - c.discount
}

// Clear resets items, customer, discount and note. The tax rate is a session
// default, not cart state, and is preserved.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
}

func (c *Cart) clearLocked() {
	c.items = nil
	c.customerID = nil
	c.discount = 0
	c.note = ""
}

// BeginCheckout marks the cart as having a checkout in flight and returns a
// stable snapshot to build the sale payload from. It fails on an empty cart
// and while a previous checkout is still pending.
func (c *Cart) BeginCheckout() (*CartView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return nil, ErrCartEmpty
	}
	if c.checkingOut {
		return nil, ErrCheckoutInFlight
	}
	c.checkingOut = true
	return c.viewLocked(), nil
}

// EndCheckout releases the in-flight guard. On success the cart is cleared;
// on failure it is left exactly as it was.
func (c *Cart) EndCheckout(success bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checkingOut = false
	if success {
		c.clearLocked()
	}
}

// LineItemView is the JSON rendering of a line item, in decimals.
type LineItemView struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Subtotal  float64   `json:"subtotal"`
	Tax       float64   `json:"tax"`
	Total     float64   `json:"total"`
}

// CartView is an immutable snapshot of the cart with derived aggregates.
type CartView struct {
	Items      []LineItemView `json:"items"`
	CustomerID *uuid.UUID     `json:"customer_id"`
	Discount   float64        `json:"discount"`
	Note       string         `json:"note,omitempty"`
	TaxRate    float64        `json:"tax_rate"`
	Subtotal   float64        `json:"subtotal"`
	TaxTotal   float64        `json:"tax_total"`
	GrandTotal float64        `json:"grand_total"`
}

// View returns a snapshot of the current cart state.
func (c *Cart) View() *CartView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Cart) viewLocked() *CartView {
	items := make([]LineItemView, len(c.items))
	for i, item := range c.items {
		items[i] = LineItemView{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: Decimal(item.UnitPrice),
			Subtotal:  Decimal(item.Subtotal),
			Tax:       Decimal(item.Tax),
			Total:     Decimal(item.Total),
		}
	}

	var customerID *uuid.UUID
	if c.customerID != nil {
		id := *c.customerID
		customerID = &id
	}

	return &CartView{
		Items:      items,
		CustomerID: customerID,
		Discount:   Decimal(c.discount),
		Note:       c.note,
		TaxRate:    c.taxRate,
		Subtotal:   Decimal(c.subtotalLocked()),
		TaxTotal:   Decimal(c.taxTotalLocked()),
		GrandTotal: Decimal(c.subtotalLocked() + c.taxTotalLocked() - c.discount),
	}
}

// MarshalJSON renders the cart as its snapshot.
func (c *Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.View())
}
