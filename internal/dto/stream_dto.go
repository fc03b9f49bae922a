package dto

import (
	"time"
)

// StudioEventMessage is the envelope carried over the in-process event
// topic and pushed to WebSocket subscribers.
type StudioEventMessage struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}
