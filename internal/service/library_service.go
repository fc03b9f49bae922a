package service

import (
	"fmt"
	"sync"
	"time"

	"ai-studio-be/internal/dto"
	"ai-studio-be/internal/entity"
	"ai-studio-be/internal/pkg/logger"
	"ai-studio-be/internal/repository/contract"
	"ai-studio-be/pkg/events"

	"github.com/google/uuid"
)

const mediaPathPrefix = "/api/media/v1/"

// ILibraryService is the item registry: the user-curated working set of
// uploaded images plus the selection marked for the next batch run.
type ILibraryService interface {
	AddItems(files []dto.UploadedFile) *dto.AddItemsResponse
	RemoveItem(id uuid.UUID)
	ClearAll()
	ToggleSelection(id uuid.UUID)
	SelectAll()
	DeselectAll()
	Snapshot() *dto.LibrarySnapshotResponse
	SelectedItems() []entity.SourceItem
	Item(id uuid.UUID) (entity.SourceItem, bool)
}

type libraryService struct {
	mu        sync.Mutex
	items     []*entity.SourceItem // insertion order
	selection map[uuid.UUID]struct{}

	handleRepo contract.IHandleRepository
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewLibraryService(
	handleRepo contract.IHandleRepository,
	publisher IPublisherService,
	sysLogger logger.ILogger,
) ILibraryService {
	return &libraryService{
		selection:  make(map[uuid.UUID]struct{}),
		handleRepo: handleRepo,
		publisher:  publisher,
		logger:     sysLogger,
	}
}

func contentKey(name string, size int64) string {
	return fmt.Sprintf("%s\x00%d", name, size)
}

// AddItems registers each file in input order, skipping files whose
// (name, size) already exists in the library. Each accepted file gets a
// fresh display handle.
func (s *libraryService) AddItems(files []dto.UploadedFile) *dto.AddItemsResponse {
	s.mu.Lock()

	existing := make(map[string]struct{}, len(s.items))
	for _, item := range s.items {
		existing[contentKey(item.Name, item.Size)] = struct{}{}
	}

	res := &dto.AddItemsResponse{}
	for _, file := range files {
		key := contentKey(file.Name, file.Size)
		if _, dup := existing[key]; dup {
			res.Skipped++
			continue
		}
		existing[key] = struct{}{}

		item := &entity.SourceItem{
			Id:        uuid.New(),
			Name:      file.Name,
			Size:      file.Size,
			MimeType:  file.MimeType,
			Payload:   file.Payload,
			Handle:    s.handleRepo.Mint(file.Payload, file.MimeType),
			CreatedAt: time.Now(),
		}
		s.items = append(s.items, item)
		res.Added++
	}
	count := len(s.items)
	s.mu.Unlock()

	if res.Added > 0 {
		s.publisher.Publish(events.NewLibraryChangedEvent(count))
	}
	return res
}

// RemoveItem releases the item's display handle exactly once, drops the
// item and prunes it from the selection. Unknown ids are a no-op.
func (s *libraryService) RemoveItem(id uuid.UUID) {
	s.mu.Lock()

	idx := -1
	for i, item := range s.items {
		if item.Id == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return
	}

	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	delete(s.selection, id)
	count := len(s.items)
	s.mu.Unlock()

	// The item is already out of the registry, so a concurrent second
	// RemoveItem can never reach this release.
	s.handleRepo.Release(removed.Handle)

	s.publisher.Publish(events.NewLibraryChangedEvent(count))
}

// ClearAll releases every display handle and empties both the library and
// the selection.
func (s *libraryService) ClearAll() {
	s.mu.Lock()
	removed := s.items
	s.items = nil
	s.selection = make(map[uuid.UUID]struct{})
	s.mu.Unlock()

	for _, item := range removed {
		s.handleRepo.Release(item.Handle)
	}

	s.publisher.Publish(events.NewLibraryChangedEvent(0))
}

func (s *libraryService) ToggleSelection(id uuid.UUID) {
	s.mu.Lock()

	found := false
	for _, item := range s.items {
		if item.Id == id {
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return
	}

	if _, selected := s.selection[id]; selected {
		delete(s.selection, id)
	} else {
		s.selection[id] = struct{}{}
	}
	count := len(s.selection)
	s.mu.Unlock()

	s.publisher.Publish(events.NewSelectionChangedEvent(count))
}

func (s *libraryService) SelectAll() {
	s.mu.Lock()
	for _, item := range s.items {
		s.selection[item.Id] = struct{}{}
	}
	count := len(s.selection)
	s.mu.Unlock()

	s.publisher.Publish(events.NewSelectionChangedEvent(count))
}

func (s *libraryService) DeselectAll() {
	s.mu.Lock()
	s.selection = make(map[uuid.UUID]struct{})
	s.mu.Unlock()

	s.publisher.Publish(events.NewSelectionChangedEvent(0))
}

func (s *libraryService) Snapshot() *dto.LibrarySnapshotResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := &dto.LibrarySnapshotResponse{
		Items:         make([]dto.SourceItemResponse, 0, len(s.items)),
		SelectedCount: len(s.selection),
	}
	for _, item := range s.items {
		_, selected := s.selection[item.Id]
		res.Items = append(res.Items, dto.SourceItemResponse{
			Id:         item.Id,
			Name:       item.Name,
			Size:       item.Size,
			MimeType:   item.MimeType,
			DisplayURL: mediaPathPrefix + item.Handle,
			Selected:   selected,
			CreatedAt:  item.CreatedAt,
		})
	}
	return res
}

// SelectedItems returns copies of the selected items in the library's
// insertion order (not selection-toggle order).
func (s *libraryService) SelectedItems() []entity.SourceItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var selected []entity.SourceItem
	for _, item := range s.items {
		if _, ok := s.selection[item.Id]; ok {
			selected = append(selected, *item)
		}
	}
	return selected
}

func (s *libraryService) Item(id uuid.UUID) (entity.SourceItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.Id == id {
			return *item, true
		}
	}
	return entity.SourceItem{}, false
}
