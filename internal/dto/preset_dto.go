package dto

type AddPresetRequest struct {
	Label       string `json:"label" validate:"required"`
	Instruction string `json:"instruction" validate:"required"`
}

type PresetResponse struct {
	Label       string `json:"label"`
	Instruction string `json:"instruction"`
}
