package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ActivityCategory string

const (
	ActivityAnalysis   ActivityCategory = "analysis"
	ActivityGeneration ActivityCategory = "generation"
	ActivityEdit       ActivityCategory = "edit"
)

// ActivityDetail is the category-specific payload of an ActivityRecord.
// Exactly one concrete case exists per category; each carries only the
// fields that category produces.
type ActivityDetail interface {
	Category() ActivityCategory
}

// AnalysisDetail holds the self-contained encoded input image and the text
// the model returned for it.
type AnalysisDetail struct {
	Inputs     []string `json:"inputs,omitempty"`
	ResultText string   `json:"result_text"`
}

func (AnalysisDetail) Category() ActivityCategory { return ActivityAnalysis }

// GenerationDetail holds the encoded artifacts produced from a bare prompt.
type GenerationDetail struct {
	Outputs []string `json:"outputs"`
}

func (GenerationDetail) Category() ActivityCategory { return ActivityGeneration }

// EditDetail holds the encoded source image(s) and the produced artifacts.
type EditDetail struct {
	Inputs  []string `json:"inputs,omitempty"`
	Outputs []string `json:"outputs"`
}

func (EditDetail) Category() ActivityCategory { return ActivityEdit }

// ActivityRecord is one persisted history entry. Records are immutable once
// created and the log keeps them newest-first.
type ActivityRecord struct {
	Id          uuid.UUID
	Category    ActivityCategory
	CreatedAt   time.Time
	Instruction string
	Detail      ActivityDetail
}

func NewAnalysisRecord(instruction string, inputs []string, resultText string) ActivityRecord {
	return ActivityRecord{
		Id:          uuid.New(),
		Category:    ActivityAnalysis,
		CreatedAt:   time.Now(),
		Instruction: instruction,
		Detail:      AnalysisDetail{Inputs: inputs, ResultText: resultText},
	}
}

func NewGenerationRecord(instruction string, outputs []string) ActivityRecord {
	return ActivityRecord{
		Id:          uuid.New(),
		Category:    ActivityGeneration,
		CreatedAt:   time.Now(),
		Instruction: instruction,
		Detail:      GenerationDetail{Outputs: outputs},
	}
}

func NewEditRecord(instruction string, inputs []string, outputs []string) ActivityRecord {
	return ActivityRecord{
		Id:          uuid.New(),
		Category:    ActivityEdit,
		CreatedAt:   time.Now(),
		Instruction: instruction,
		Detail:      EditDetail{Inputs: inputs, Outputs: outputs},
	}
}

// activityRecordJSON is the wire/persistence shape. The detail payload is
// kept raw so it can be decoded against the category tag.
type activityRecordJSON struct {
	Id          uuid.UUID        `json:"id"`
	Category    ActivityCategory `json:"category"`
	CreatedAt   time.Time        `json:"created_at"`
	Instruction string           `json:"instruction"`
	Detail      json.RawMessage  `json:"detail"`
}

func (r ActivityRecord) MarshalJSON() ([]byte, error) {
	detail, err := json.Marshal(r.Detail)
	if err != nil {
		return nil, err
	}
	return json.Marshal(activityRecordJSON{
		Id:          r.Id,
		Category:    r.Category,
		CreatedAt:   r.CreatedAt,
		Instruction: r.Instruction,
		Detail:      detail,
	})
}

func (r *ActivityRecord) UnmarshalJSON(data []byte) error {
	var raw activityRecordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Id = raw.Id
	r.Category = raw.Category
	r.CreatedAt = raw.CreatedAt
	r.Instruction = raw.Instruction

	switch raw.Category {
	case ActivityAnalysis:
		var d AnalysisDetail
		if err := json.Unmarshal(raw.Detail, &d); err != nil {
			return err
		}
		r.Detail = d
	case ActivityGeneration:
		var d GenerationDetail
		if err := json.Unmarshal(raw.Detail, &d); err != nil {
			return err
		}
		r.Detail = d
	case ActivityEdit:
		var d EditDetail
		if err := json.Unmarshal(raw.Detail, &d); err != nil {
			return err
		}
		r.Detail = d
	default:
		return fmt.Errorf("unknown activity category %q", raw.Category)
	}

	return nil
}
