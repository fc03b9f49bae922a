package service

import (
	"context"
	"encoding/json"
	"sync"

	"ai-studio-be/internal/dto"
	"ai-studio-be/internal/entity"
	"ai-studio-be/internal/pkg/apperror"
	"ai-studio-be/internal/pkg/logger"
	"ai-studio-be/internal/repository/contract"
	"ai-studio-be/pkg/events"
)

const activityLogKey = "studio:activity_log"

// IActivityService is the append-only, persisted record of every completed
// operation. The in-memory log is authoritative for the session; the
// key-value collaborator is best-effort.
type IActivityService interface {
	Load(ctx context.Context)
	Append(ctx context.Context, record entity.ActivityRecord)
	Clear(ctx context.Context)
	List() []entity.ActivityRecord
	Snapshot() []*dto.ActivityRecordResponse
}

type activityService struct {
	mu      sync.Mutex
	records []entity.ActivityRecord // newest first

	kvRepo    contract.IKeyValueRepository
	publisher IPublisherService
	logger    logger.ILogger
}

func NewActivityService(
	kvRepo contract.IKeyValueRepository,
	publisher IPublisherService,
	sysLogger logger.ILogger,
) IActivityService {
	return &activityService{
		kvRepo:    kvRepo,
		publisher: publisher,
		logger:    sysLogger,
	}
}

// Load restores the log from the persistence collaborator. Absent or
// malformed data falls back to an empty log instead of failing startup.
func (s *activityService) Load(ctx context.Context) {
	value, found, err := s.kvRepo.Read(ctx, activityLogKey)
	if err != nil {
		s.logger.Warn("Activity", "Failed to read activity log, starting empty", map[string]interface{}{
			"error": apperror.NewPersistence(activityLogKey, err).Error(),
		})
		return
	}
	if !found {
		return
	}

	var records []entity.ActivityRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		s.logger.Warn("Activity", "Malformed activity log payload, starting empty", map[string]interface{}{
			"error": apperror.NewPersistence(activityLogKey, err).Error(),
		})
		return
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
}

// Append inserts the record at the front and persists the log. A failed
// write is logged and swallowed.
func (s *activityService) Append(ctx context.Context, record entity.ActivityRecord) {
	s.mu.Lock()
	s.records = append([]entity.ActivityRecord{record}, s.records...)
	snapshot := make([]entity.ActivityRecord, len(s.records))
	copy(snapshot, s.records)
	s.mu.Unlock()

	s.persist(ctx, snapshot)

	s.publisher.Publish(events.NewActivityAppendedEvent(record.Id.String(), string(record.Category)))
}

// Clear empties the log and persists the empty state. The confirmation
// dialog is a presentation concern; this call is unconditional.
func (s *activityService) Clear(ctx context.Context) {
	s.mu.Lock()
	s.records = nil
	s.mu.Unlock()

	s.persist(ctx, []entity.ActivityRecord{})

	s.publisher.Publish(events.NewActivityClearedEvent())
}

func (s *activityService) persist(ctx context.Context, records []entity.ActivityRecord) {
	payload, err := json.Marshal(records)
	if err != nil {
		s.logger.Error("Activity", "Failed to serialize activity log", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if err := s.kvRepo.Write(ctx, activityLogKey, string(payload)); err != nil {
		s.logger.Error("Activity", "Failed to persist activity log", map[string]interface{}{
			"error": apperror.NewPersistence(activityLogKey, err).Error(),
		})
	}
}

func (s *activityService) List() []entity.ActivityRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]entity.ActivityRecord, len(s.records))
	copy(records, s.records)
	return records
}

func (s *activityService) Snapshot() []*dto.ActivityRecordResponse {
	records := s.List()

	res := make([]*dto.ActivityRecordResponse, 0, len(records))
	for _, record := range records {
		item := &dto.ActivityRecordResponse{
			Id:          record.Id,
			Category:    string(record.Category),
			CreatedAt:   record.CreatedAt,
			Instruction: record.Instruction,
		}
		switch detail := record.Detail.(type) {
		case entity.AnalysisDetail:
			item.Inputs = detail.Inputs
			item.ResultText = detail.ResultText
		case entity.GenerationDetail:
			item.Outputs = detail.Outputs
		case entity.EditDetail:
			item.Inputs = detail.Inputs
			item.Outputs = detail.Outputs
		}
		res = append(res, item)
	}
	return res
}
