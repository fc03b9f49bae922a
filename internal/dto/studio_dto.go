package dto

import "github.com/google/uuid"

type BatchEditRequest struct {
	Instruction string `json:"instruction" validate:"required"`
}

type JobResultResponse struct {
	ItemId       uuid.UUID `json:"item_id"`
	SourceURL    string    `json:"source_url"`
	Outputs      []string  `json:"outputs"`
	ActiveOutput int       `json:"active_output"`
	Failure      string    `json:"failure,omitempty"`
}

type BatchRunResponse struct {
	Results   []JobResultResponse `json:"results"`
	Successes int                 `json:"successes"`
	Failures  int                 `json:"failures"`
}

type SetActiveOutputRequest struct {
	Index int `json:"index"`
}

type AnalyzeRequest struct {
	ItemId      uuid.UUID `json:"item_id" validate:"required"`
	Instruction string    `json:"instruction" validate:"required"`
}

type AnalyzeResponse struct {
	RecordId   uuid.UUID `json:"record_id"`
	ResultText string    `json:"result_text"`
}

type GenerateRequest struct {
	Instruction string `json:"instruction" validate:"required"`
}

type GenerateResponse struct {
	RecordId uuid.UUID `json:"record_id"`
	Outputs  []string  `json:"outputs"`
}
