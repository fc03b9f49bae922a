package entity

// PresetEntry is a saved {label, instruction} pair. Labels are unique
// case-insensitively; instruction text is unique exactly. Entries are never
// edited in place, only added and removed.
type PresetEntry struct {
	Label       string `json:"label"`
	Instruction string `json:"instruction"`
}
