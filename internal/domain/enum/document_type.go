package enum

import (
	"encoding/json"
	"fmt"
)

// DocumentType identifies the kind of document a draft builds.
type DocumentType int

const (
	DocumentTypeSale DocumentType = iota
	DocumentTypePurchase
	DocumentTypePurchaseReturn
)

func (t DocumentType) String() string {
	names := [...]string{"sale", "purchase", "purchase_return"}
	if int(t) < 0 || int(t) >= len(names) {
		return "sale"
	}
	return names[t]
}

// Resource returns the upstream collection the type maps to.
func (t DocumentType) Resource() string {
	switch t {
	case DocumentTypePurchase:
		return "purchases"
	case DocumentTypePurchaseReturn:
		return "purchase-returns"
	default:
		return "sales"
	}
}

// PartyField returns the wire name for the document's party reference.
// Sales reference a customer, purchases and returns a supplier.
func (t DocumentType) PartyField() string {
	if t == DocumentTypeSale {
		return "customer_id"
	}
	return "supplier_id"
}

// AmountField returns the wire name for a line's unit amount.
func (t DocumentType) AmountField() string {
	if t == DocumentTypeSale {
		return "unit_price"
	}
	return "unit_cost"
}

func (t DocumentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *DocumentType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = DocumentType(i)
		return nil
	}
	parsed, err := ParseDocumentType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseDocumentType converts a wire string into a DocumentType.
func ParseDocumentType(s string) (DocumentType, error) {
	switch s {
	case "sale":
		return DocumentTypeSale, nil
	case "purchase":
		return DocumentTypePurchase, nil
	case "purchase_return":
		return DocumentTypePurchaseReturn, nil
	}
	return DocumentTypeSale, fmt.Errorf("unknown document type %q", s)
}
