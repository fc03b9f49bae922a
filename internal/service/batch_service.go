package service

import (
	"context"
	"strings"
	"sync"

	"ai-studio-be/internal/dto"
	"ai-studio-be/internal/entity"
	"ai-studio-be/internal/pkg/apperror"
	"ai-studio-be/internal/pkg/logger"
	"ai-studio-be/pkg/events"
	"ai-studio-be/pkg/genai"

	"github.com/google/uuid"
)

// IBatchService drives one remote edit per selected item, strictly
// sequentially, collecting independent per-item outcomes. A failed item
// never aborts the run.
type IBatchService interface {
	Run(ctx context.Context, req *dto.BatchEditRequest) (*dto.BatchRunResponse, error)
	Results() *dto.BatchRunResponse
	SetActiveOutput(itemId uuid.UUID, index int) error
}

type batchService struct {
	mu      sync.Mutex
	running bool
	results map[uuid.UUID]*entity.JobResult
	order   []uuid.UUID // run iteration order, for stable snapshots

	library     ILibraryService
	transformer genai.Transformer
	activity    IActivityService
	publisher   IPublisherService
	logger      logger.ILogger
}

func NewBatchService(
	library ILibraryService,
	transformer genai.Transformer,
	activity IActivityService,
	publisher IPublisherService,
	sysLogger logger.ILogger,
) IBatchService {
	return &batchService{
		results:     make(map[uuid.UUID]*entity.JobResult),
		library:     library,
		transformer: transformer,
		activity:    activity,
		publisher:   publisher,
		logger:      sysLogger,
	}
}

func (s *batchService) Run(ctx context.Context, req *dto.BatchEditRequest) (*dto.BatchRunResponse, error) {
	instruction := strings.TrimSpace(req.Instruction)
	if instruction == "" {
		return nil, apperror.NewValidation("instruction must not be empty")
	}

	// Insertion order of the library, not selection-toggle order.
	items := s.library.SelectedItems()
	if len(items) == 0 {
		return nil, apperror.NewValidation("no items selected")
	}

	// Preconditions hold: claim the runner and atomically replace the
	// previous run's results. Until here nothing was touched.
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, apperror.NewValidation("a batch run is already in progress")
	}
	s.running = true
	s.results = make(map[uuid.UUID]*entity.JobResult, len(items))
	s.order = s.order[:0]
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	s.publisher.Publish(events.NewBatchStartedEvent(len(items)))

	successes, failures := 0, 0
	for i, item := range items {
		// Progress goes out before the outcome is known.
		s.publisher.Publish(events.NewBatchProgressEvent(i+1, len(items), item.Id.String(), item.Name))

		result := &entity.JobResult{
			ItemId:       item.Id,
			SourceHandle: item.Handle,
			ActiveOutput: entity.NoActiveOutput,
		}

		// One external call in flight at a time; the next item does not
		// start until this one resolves.
		artifacts, err := s.transformer.Edit(ctx, instruction, genai.Image{
			MimeType: item.MimeType,
			Data:     item.Payload,
		})
		if err != nil {
			result.Failure = apperror.NewService("edit", "transform failed", err).Error()
			failures++
			s.logger.Warn("Batch", "Item transform failed", map[string]interface{}{
				"item_id": item.Id,
				"error":   err.Error(),
			})
		} else {
			result.Outputs = make([]string, 0, len(artifacts))
			for _, artifact := range artifacts {
				result.Outputs = append(result.Outputs, string(artifact))
			}
			result.ActiveOutput = 0
			successes++

			// History is written per item, not at run end, so navigating
			// away mid-run keeps the completed items.
			s.activity.Append(ctx, entity.NewEditRecord(
				instruction,
				[]string{encodeDataURL(item.MimeType, item.Payload)},
				result.Outputs,
			))
		}

		s.mu.Lock()
		s.results[item.Id] = result
		s.order = append(s.order, item.Id)
		s.mu.Unlock()

		s.publisher.Publish(events.NewBatchItemDoneEvent(item.Id.String(), err == nil))
	}

	s.publisher.Publish(events.NewBatchFinishedEvent(successes, failures))

	return s.Results(), nil
}

// Results snapshots the current run's outcomes in iteration order.
func (s *batchService) Results() *dto.BatchRunResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := &dto.BatchRunResponse{
		Results: make([]dto.JobResultResponse, 0, len(s.order)),
	}
	for _, id := range s.order {
		result, ok := s.results[id]
		if !ok {
			continue
		}
		res.Results = append(res.Results, dto.JobResultResponse{
			ItemId:       result.ItemId,
			SourceURL:    mediaPathPrefix + result.SourceHandle,
			Outputs:      result.Outputs,
			ActiveOutput: result.ActiveOutput,
			Failure:      result.Failure,
		})
		if result.Failure != "" {
			res.Failures++
		} else {
			res.Successes++
		}
	}
	return res
}

// SetActiveOutput picks which produced artifact the user is looking at.
func (s *batchService) SetActiveOutput(itemId uuid.UUID, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, ok := s.results[itemId]
	if !ok {
		return apperror.NewValidation("no result for item %s", itemId)
	}
	if index < 0 || index >= len(result.Outputs) {
		return apperror.NewValidation("output index %d out of range", index)
	}
	result.ActiveOutput = index
	return nil
}
