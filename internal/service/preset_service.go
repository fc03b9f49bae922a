package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"ai-studio-be/internal/dto"
	"ai-studio-be/internal/entity"
	"ai-studio-be/internal/pkg/apperror"
	"ai-studio-be/internal/pkg/logger"
	"ai-studio-be/internal/repository/contract"
	"ai-studio-be/pkg/events"
)

const presetsKey = "studio:presets"

// seedPresets is what a fresh (or unreadable) installation starts with. The
// preset list is never presented empty on first run.
var seedPresets = []entity.PresetEntry{
	{Label: "Enhance", Instruction: "Enhance lighting and sharpness while keeping the subject unchanged"},
	{Label: "Watercolor", Instruction: "Repaint this image as a soft watercolor illustration"},
	{Label: "Studio portrait", Instruction: "Relight the subject as a studio portrait against a neutral backdrop"},
	{Label: "Retro poster", Instruction: "Turn this image into a 1970s travel poster with bold flat colors"},
}

// IPresetService is the persisted label -> instruction mapping. Labels are
// unique case-insensitively and instruction text is unique exactly; the
// composer's save-as-preset action goes through the same Add validation.
type IPresetService interface {
	Load(ctx context.Context)
	Add(ctx context.Context, req *dto.AddPresetRequest) (*dto.PresetResponse, error)
	Remove(ctx context.Context, label string)
	List() []entity.PresetEntry
	Snapshot() []*dto.PresetResponse
}

type presetService struct {
	mu      sync.Mutex
	entries []entity.PresetEntry // newest first

	kvRepo    contract.IKeyValueRepository
	publisher IPublisherService
	logger    logger.ILogger
}

func NewPresetService(
	kvRepo contract.IKeyValueRepository,
	publisher IPublisherService,
	sysLogger logger.ILogger,
) IPresetService {
	return &presetService{
		kvRepo:    kvRepo,
		publisher: publisher,
		logger:    sysLogger,
	}
}

// Load restores presets from the persistence collaborator, falling back to
// the seed set on absent or malformed data.
func (s *presetService) Load(ctx context.Context) {
	s.mu.Lock()
	s.entries = append([]entity.PresetEntry(nil), seedPresets...)
	s.mu.Unlock()

	value, found, err := s.kvRepo.Read(ctx, presetsKey)
	if err != nil {
		s.logger.Warn("Preset", "Failed to read presets, using seed set", map[string]interface{}{
			"error": apperror.NewPersistence(presetsKey, err).Error(),
		})
		return
	}
	if !found {
		return
	}

	var entries []entity.PresetEntry
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		s.logger.Warn("Preset", "Malformed presets payload, using seed set", map[string]interface{}{
			"error": apperror.NewPersistence(presetsKey, err).Error(),
		})
		return
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
}

func (s *presetService) Add(ctx context.Context, req *dto.AddPresetRequest) (*dto.PresetResponse, error) {
	label := strings.TrimSpace(req.Label)
	instruction := strings.TrimSpace(req.Instruction)

	if label == "" || instruction == "" {
		return nil, apperror.NewValidation("preset label and instruction must not be empty")
	}

	s.mu.Lock()
	for _, entry := range s.entries {
		if strings.EqualFold(entry.Label, label) {
			s.mu.Unlock()
			return nil, apperror.NewValidation("a preset named %q already exists", entry.Label)
		}
		if entry.Instruction == instruction {
			s.mu.Unlock()
			return nil, apperror.NewValidation("preset %q already uses this instruction", entry.Label)
		}
	}

	entry := entity.PresetEntry{Label: label, Instruction: instruction}
	s.entries = append([]entity.PresetEntry{entry}, s.entries...)
	snapshot := make([]entity.PresetEntry, len(s.entries))
	copy(snapshot, s.entries)
	count := len(s.entries)
	s.mu.Unlock()

	s.persist(ctx, snapshot)

	s.publisher.Publish(events.NewPresetsChangedEvent(count))

	return &dto.PresetResponse{Label: entry.Label, Instruction: entry.Instruction}, nil
}

// Remove deletes the entry with that label; absent labels are a no-op.
func (s *presetService) Remove(ctx context.Context, label string) {
	s.mu.Lock()

	idx := -1
	for i, entry := range s.entries {
		if strings.EqualFold(entry.Label, label) {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return
	}

	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	snapshot := make([]entity.PresetEntry, len(s.entries))
	copy(snapshot, s.entries)
	count := len(s.entries)
	s.mu.Unlock()

	s.persist(ctx, snapshot)

	s.publisher.Publish(events.NewPresetsChangedEvent(count))
}

func (s *presetService) persist(ctx context.Context, entries []entity.PresetEntry) {
	payload, err := json.Marshal(entries)
	if err != nil {
		s.logger.Error("Preset", "Failed to serialize presets", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if err := s.kvRepo.Write(ctx, presetsKey, string(payload)); err != nil {
		s.logger.Error("Preset", "Failed to persist presets", map[string]interface{}{
			"error": apperror.NewPersistence(presetsKey, err).Error(),
		})
	}
}

func (s *presetService) List() []entity.PresetEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]entity.PresetEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

func (s *presetService) Snapshot() []*dto.PresetResponse {
	entries := s.List()

	res := make([]*dto.PresetResponse, 0, len(entries))
	for _, entry := range entries {
		res = append(res, &dto.PresetResponse{
			Label:       entry.Label,
			Instruction: entry.Instruction,
		})
	}
	return res
}
