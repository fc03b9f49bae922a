package dto

import (
	"time"

	"github.com/google/uuid"
)

// ActivityRecordResponse flattens the tagged activity variant for the
// presentation layer; only the fields of the record's category are set.
type ActivityRecordResponse struct {
	Id          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	Instruction string    `json:"instruction"`
	Inputs      []string  `json:"inputs,omitempty"`
	Outputs     []string  `json:"outputs,omitempty"`
	ResultText  string    `json:"result_text,omitempty"`
}
