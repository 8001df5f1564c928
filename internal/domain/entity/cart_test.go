package entity

import (
	"testing"

	"github.com/google/uuid"
)

func testProduct(name string, sellingPrice int64) *Product {
	return &Product{
		ID:           uuid.New(),
		Name:         name,
		Code:         "P-" + name,
		Quantity:     10,
		BuyingPrice:  sellingPrice / 2,
		SellingPrice: sellingPrice,
		TaxRate:      16,
	}
}

func TestAddItem_MergesSameProduct(t *testing.T) {
	cart := NewCart(0)
	product := testProduct("Soda", 100)

	cart.AddItem(product, 2)
	cart.AddItem(product, 3)

	if cart.Len() != 1 {
		t.Fatalf("expected one merged row, got %d", cart.Len())
	}

	view := cart.View()
	if view.Items[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", view.Items[0].Quantity)
	}
	if cart.Subtotal() != 500 {
		t.Errorf("expected subtotal 500 cents, got %d", cart.Subtotal())
	}
}

func TestAddItem_DistinctProductsKeepOrder(t *testing.T) {
	cart := NewCart(0)
	first := testProduct("Bread", 250)
	second := testProduct("Milk", 120)

	cart.AddItem(first, 1)
	cart.AddItem(second, 1)

	view := cart.View()
	if len(view.Items) != 2 {
		t.Fatalf("expected two rows, got %d", len(view.Items))
	}
	if view.Items[0].ProductID != first.ID || view.Items[1].ProductID != second.ID {
		t.Error("rows are not in insertion order")
	}
}

func TestAddItem_QuantityBelowOneDefaultsToOne(t *testing.T) {
	cart := NewCart(0)
	cart.AddItem(testProduct("Eggs", 30), 0)

	if got := cart.View().Items[0].Quantity; got != 1 {
		t.Errorf("expected quantity 1, got %d", got)
	}
}

func TestSubtotal_IsExactInCents(t *testing.T) {
	cart := NewCart(0)
	// 3 x 0.10 trips float arithmetic; cents must stay exact.
	cart.AddItem(testProduct("Sweet", 10), 3)

	if cart.Subtotal() != 30 {
		t.Errorf("expected 30 cents, got %d", cart.Subtotal())
	}
	if got := cart.View().Subtotal; got != 0.30 {
		t.Errorf("expected decimal 0.30, got %v", got)
	}
}

func TestLineTax_DerivedFromCartRate(t *testing.T) {
	cart := NewCart(16)
	cart.AddItem(testProduct("Rice", 1000), 2)

	view := cart.View()
	// 2000 * 16% = 320 cents
	if view.Items[0].Tax != 3.20 {
		t.Errorf("expected line tax 3.20, got %v", view.Items[0].Tax)
	}
	if cart.TaxTotal() != 320 {
		t.Errorf("expected tax total 320 cents, got %d", cart.TaxTotal())
	}
	if view.Items[0].Total != 23.20 {
		t.Errorf("expected line total 23.20, got %v", view.Items[0].Total)
	}
}

func TestGrandTotal_AppliesDiscount(t *testing.T) {
	cart := NewCart(0)
	cart.AddItem(testProduct("Flour", 500), 2)
	cart.SetDiscount(300)

	if cart.GrandTotal() != 700 {
		t.Errorf("expected 700 cents, got %d", cart.GrandTotal())
	}
}

func TestGrandTotal_CanGoNegative(t *testing.T) {
	cart := NewCart(0)
	cart.AddItem(testProduct("Gum", 50), 1)
	cart.SetDiscount(200)

	if cart.GrandTotal() != -150 {
		t.Errorf("expected -150 cents, got %d", cart.GrandTotal())
	}
}

func TestUpdateQuantity_SetsAndRecomputes(t *testing.T) {
	cart := NewCart(0)
	cart.AddItem(testProduct("Oil", 400), 1)
	itemID := cart.View().Items[0].ID

	if !cart.UpdateQuantity(itemID, 4) {
		t.Fatal("expected row to be found")
	}
	if cart.Subtotal() != 1600 {
		t.Errorf("expected subtotal 1600 cents, got %d", cart.Subtotal())
	}
}

func TestUpdateQuantity_ZeroRemovesRow(t *testing.T) {
	cart := NewCart(0)
	cart.AddItem(testProduct("Salt", 80), 2)
	itemID := cart.View().Items[0].ID

	if !cart.UpdateQuantity(itemID, 0) {
		t.Fatal("expected removal to report the row as found")
	}
	if cart.Len() != 0 {
		t.Errorf("expected empty cart, got %d rows", cart.Len())
	}
}

func TestUpdateQuantity_UnknownRow(t *testing.T) {
	cart := NewCart(0)
	cart.AddItem(testProduct("Tea", 150), 1)

	if cart.UpdateQuantity(uuid.New(), 3) {
		t.Error("expected unknown row to report false")
	}
	if got := cart.View().Items[0].Quantity; got != 1 {
		t.Errorf("other rows must be unaffected, got quantity %d", got)
	}
}

func TestRemoveItem_LeavesOtherRows(t *testing.T) {
	cart := NewCart(0)
	keep := testProduct("Keep", 100)
	drop := testProduct("Drop", 200)
	cart.AddItem(keep, 1)
	cart.AddItem(drop, 1)

	var dropID uuid.UUID
	for _, item := range cart.View().Items {
		if item.ProductID == drop.ID {
			dropID = item.ID
		}
	}

	if !cart.RemoveItem(dropID) {
		t.Fatal("expected row to be removed")
	}
	view := cart.View()
	if len(view.Items) != 1 || view.Items[0].ProductID != keep.ID {
		t.Error("remaining row does not match the kept product")
	}
}

func TestClear_ResetsStateButKeepsTaxRate(t *testing.T) {
	cart := NewCart(16)
	customerID := uuid.New()
	cart.AddItem(testProduct("Sugar", 200), 2)
	cart.SetCustomer(&customerID)
	cart.SetDiscount(50)
	cart.SetNote("deliver later")

	cart.Clear()

	view := cart.View()
	if len(view.Items) != 0 || view.CustomerID != nil || view.Discount != 0 || view.Note != "" {
		t.Error("expected items, customer, discount and note to be reset")
	}
	if view.TaxRate != 16 {
		t.Errorf("tax rate must survive Clear, got %v", view.TaxRate)
	}

	// New items still pick up the session rate.
	cart.AddItem(testProduct("Sugar", 200), 1)
	if cart.TaxTotal() != 32 {
		t.Errorf("expected 32 cents tax after clear, got %d", cart.TaxTotal())
	}
}

func TestBeginCheckout_EmptyCart(t *testing.T) {
	cart := NewCart(0)

	if cart.GrandTotal() != 0 {
		t.Errorf("empty cart grand total should be 0, got %d", cart.GrandTotal())
	}
	if _, err := cart.BeginCheckout(); err != ErrCartEmpty {
		t.Errorf("expected ErrCartEmpty, got %v", err)
	}
}

func TestBeginCheckout_RejectsConcurrentCheckout(t *testing.T) {
	cart := NewCart(0)
	cart.AddItem(testProduct("Cocoa", 600), 1)

	if _, err := cart.BeginCheckout(); err != nil {
		t.Fatalf("first checkout should start, got %v", err)
	}
	if _, err := cart.BeginCheckout(); err != ErrCheckoutInFlight {
		t.Errorf("expected ErrCheckoutInFlight, got %v", err)
	}
}

func TestEndCheckout_FailureKeepsCart(t *testing.T) {
	cart := NewCart(0)
	cart.AddItem(testProduct("Juice", 300), 2)
	cart.SetDiscount(100)

	if _, err := cart.BeginCheckout(); err != nil {
		t.Fatal(err)
	}
	cart.EndCheckout(false)

	if cart.Len() != 1 || cart.GrandTotal() != 500 {
		t.Error("failed checkout must leave the cart untouched")
	}
	if _, err := cart.BeginCheckout(); err != nil {
		t.Errorf("cart should accept a new checkout after failure, got %v", err)
	}
}

func TestEndCheckout_SuccessClearsCart(t *testing.T) {
	cart := NewCart(16)
	cart.AddItem(testProduct("Juice", 300), 2)

	if _, err := cart.BeginCheckout(); err != nil {
		t.Fatal(err)
	}
	cart.EndCheckout(true)

	if cart.Len() != 0 {
		t.Error("successful checkout must clear the cart")
	}
	if cart.View().TaxRate != 16 {
		t.Error("tax rate must survive a successful checkout")
	}
}

func TestCheckoutSnapshot_IsStable(t *testing.T) {
	cart := NewCart(0)
	product := testProduct("Maize", 100)
	cart.AddItem(product, 1)

	view, err := cart.BeginCheckout()
	if err != nil {
		t.Fatal(err)
	}

	// The snapshot taken at checkout must not track later reads.
	if len(view.Items) != 1 || view.Items[0].Quantity != 1 {
		t.Errorf("unexpected snapshot: %+v", view)
	}
	cart.EndCheckout(true)
	if len(view.Items) != 1 {
		t.Error("snapshot changed after checkout completed")
	}
}
