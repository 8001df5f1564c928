package enum

import "encoding/json"

// PaymentStatus represents how much of a document has been paid.
type PaymentStatus int

const (
	PaymentStatusUnpaid PaymentStatus = iota
	PaymentStatusPartial
	PaymentStatusPaid
)

func (s PaymentStatus) String() string {
	names := [...]string{"unpaid", "partial", "paid"}
	if int(s) < 0 || int(s) >= len(names) {
		return "unpaid"
	}
	return names[s]
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ParsePaymentStatus converts a wire string into a PaymentStatus.
func ParsePaymentStatus(s string) PaymentStatus {
	switch s {
	case "partial":
		return PaymentStatusPartial
	case "paid":
		return PaymentStatusPaid
	}
	return PaymentStatusUnpaid
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	switch str {
	case "unpaid":
		*s = PaymentStatusUnpaid
	case "partial":
		*s = PaymentStatusPartial
	case "paid":
		*s = PaymentStatusPaid
	}
	return nil
}
