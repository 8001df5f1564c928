package enum

import "encoding/json"

// DraftState is the lifecycle state of a draft document. A draft is editable
// until a submit is in flight; a failed submit returns it to editing.
type DraftState int

const (
	DraftStateEditing DraftState = iota
	DraftStateSubmitting
)

func (s DraftState) String() string {
	if s == DraftStateSubmitting {
		return "submitting"
	}
	return "editing"
}

func (s DraftState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
