package events

import "time"

// Event type codes pushed to the presentation layer and mirrored to NATS.
const (
	TypeLibraryChanged   = "LIBRARY_CHANGED"
	TypeSelectionChanged = "SELECTION_CHANGED"
	TypeBatchStarted     = "BATCH_STARTED"
	TypeBatchProgress    = "BATCH_PROGRESS"
	TypeBatchItemDone    = "BATCH_ITEM_DONE"
	TypeBatchFinished    = "BATCH_FINISHED"
	TypeActivityAppended = "ACTIVITY_APPENDED"
	TypeActivityCleared  = "ACTIVITY_CLEARED"
	TypePresetsChanged   = "PRESETS_CHANGED"
)

func NewLibraryChangedEvent(itemCount int) BaseEvent {
	return BaseEvent{
		Type: TypeLibraryChanged,
		Data: map[string]interface{}{
			"item_count": itemCount,
		},
		OccurredAt: time.Now(),
	}
}

func NewSelectionChangedEvent(selectedCount int) BaseEvent {
	return BaseEvent{
		Type: TypeSelectionChanged,
		Data: map[string]interface{}{
			"selected_count": selectedCount,
		},
		OccurredAt: time.Now(),
	}
}

func NewBatchStartedEvent(total int) BaseEvent {
	return BaseEvent{
		Type: TypeBatchStarted,
		Data: map[string]interface{}{
			"total": total,
		},
		OccurredAt: time.Now(),
	}
}

// NewBatchProgressEvent is emitted after item `index` (1-based) of `total`
// starts processing, before its outcome is known.
func NewBatchProgressEvent(index, total int, itemId, itemName string) BaseEvent {
	return BaseEvent{
		Type: TypeBatchProgress,
		Data: map[string]interface{}{
			"index":     index,
			"total":     total,
			"item_id":   itemId,
			"item_name": itemName,
		},
		OccurredAt: time.Now(),
	}
}

func NewBatchItemDoneEvent(itemId string, succeeded bool) BaseEvent {
	return BaseEvent{
		Type: TypeBatchItemDone,
		Data: map[string]interface{}{
			"item_id":   itemId,
			"succeeded": succeeded,
		},
		OccurredAt: time.Now(),
	}
}

func NewBatchFinishedEvent(successes, failures int) BaseEvent {
	return BaseEvent{
		Type: TypeBatchFinished,
		Data: map[string]interface{}{
			"successes": successes,
			"failures":  failures,
		},
		OccurredAt: time.Now(),
	}
}

func NewActivityAppendedEvent(recordId, category string) BaseEvent {
	return BaseEvent{
		Type: TypeActivityAppended,
		Data: map[string]interface{}{
			"record_id": recordId,
			"category":  category,
		},
		OccurredAt: time.Now(),
	}
}

func NewActivityClearedEvent() BaseEvent {
	return BaseEvent{
		Type:       TypeActivityCleared,
		Data:       map[string]interface{}{},
		OccurredAt: time.Now(),
	}
}

func NewPresetsChangedEvent(presetCount int) BaseEvent {
	return BaseEvent{
		Type: TypePresetsChanged,
		Data: map[string]interface{}{
			"preset_count": presetCount,
		},
		OccurredAt: time.Now(),
	}
}
