package entity

import "github.com/google/uuid"

// NoActiveOutput marks a JobResult without a selectable artifact.
const NoActiveOutput = -1

// JobResult is one outcome of a batch run, keyed by the originating item id.
// Either Outputs is non-empty and Failure is empty, or Failure is set and
// Outputs is empty.
type JobResult struct {
	ItemId       uuid.UUID `json:"item_id"`
	SourceHandle string    `json:"source_handle"`
	Outputs      []string  `json:"outputs"`
	ActiveOutput int       `json:"active_output"`
	Failure      string    `json:"failure,omitempty"`
}
