package enum

import "encoding/json"

// DocumentStatus represents the fulfilment status of a document.
type DocumentStatus int

const (
	DocumentStatusPending DocumentStatus = iota
	DocumentStatusOrdered
	DocumentStatusCompleted
)

func (s DocumentStatus) String() string {
	names := [...]string{"pending", "ordered", "completed"}
	if int(s) < 0 || int(s) >= len(names) {
		return "pending"
	}
	return names[s]
}

func (s DocumentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ParseDocumentStatus converts a wire string into a DocumentStatus.
func ParseDocumentStatus(s string) DocumentStatus {
	switch s {
	case "ordered":
		return DocumentStatusOrdered
	case "completed":
		return DocumentStatusCompleted
	}
	return DocumentStatusPending
}

func (s *DocumentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = DocumentStatus(i)
		return nil
	}
	switch str {
	case "pending":
		*s = DocumentStatusPending
	case "ordered":
		*s = DocumentStatusOrdered
	case "completed":
		*s = DocumentStatusCompleted
	}
	return nil
}
