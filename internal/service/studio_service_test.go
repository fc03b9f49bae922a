package service

import (
	"context"
	"errors"
	"testing"

	"ai-studio-be/internal/dto"
	"ai-studio-be/internal/entity"
	"ai-studio-be/internal/pkg/apperror"
	"ai-studio-be/internal/repository/memory"
	"ai-studio-be/pkg/genai"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type studioFixture struct {
	studio   IStudioService
	library  ILibraryService
	activity IActivityService
	itemId   uuid.UUID
}

func newStudioFixture(t *testing.T, transformer genai.Transformer) *studioFixture {
	t.Helper()

	pub := &recordingPublisher{}
	library := NewLibraryService(newFakeHandleRepo(), pub, testLogger())
	activity := NewActivityService(memory.NewKeyValueRepository(), pub, testLogger())

	library.AddItems([]dto.UploadedFile{uploaded("a.png", 10)})

	return &studioFixture{
		studio:   NewStudioService(library, transformer, activity, testLogger()),
		library:  library,
		activity: activity,
		itemId:   library.Snapshot().Items[0].Id,
	}
}

func TestStudioAnalyzeAppendsRecord(t *testing.T) {
	transformer := &fakeTransformer{
		analyzeFn: func(_ context.Context, instruction string, image genai.Image) (string, error) {
			assert.Equal(t, "what is this", instruction)
			assert.Equal(t, "image/png", image.MimeType)
			return "a drawing of a house", nil
		},
	}
	f := newStudioFixture(t, transformer)

	res, err := f.studio.Analyze(context.Background(), &dto.AnalyzeRequest{
		ItemId:      f.itemId,
		Instruction: "what is this",
	})
	require.NoError(t, err)
	assert.Equal(t, "a drawing of a house", res.ResultText)

	records := f.activity.List()
	require.Len(t, records, 1)
	assert.Equal(t, res.RecordId, records[0].Id)
	assert.Equal(t, entity.ActivityAnalysis, records[0].Category)
	assert.Equal(t, "a drawing of a house", records[0].Detail.(entity.AnalysisDetail).ResultText)
}

func TestStudioAnalyzeValidation(t *testing.T) {
	f := newStudioFixture(t, &fakeTransformer{})

	var ve *apperror.ValidationError

	_, err := f.studio.Analyze(context.Background(), &dto.AnalyzeRequest{ItemId: f.itemId, Instruction: " "})
	require.ErrorAs(t, err, &ve)

	_, err = f.studio.Analyze(context.Background(), &dto.AnalyzeRequest{ItemId: uuid.New(), Instruction: "describe"})
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "unknown item")

	assert.Empty(t, f.activity.List())
}

func TestStudioAnalyzeTransformFailure(t *testing.T) {
	transformer := &fakeTransformer{
		analyzeFn: func(_ context.Context, _ string, _ genai.Image) (string, error) {
			return "", errors.New("quota exceeded")
		},
	}
	f := newStudioFixture(t, transformer)

	_, err := f.studio.Analyze(context.Background(), &dto.AnalyzeRequest{ItemId: f.itemId, Instruction: "describe"})

	var se *apperror.ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "analyze", se.Op)
	assert.ErrorContains(t, err, "quota exceeded")

	// Failed calls never reach the history.
	assert.Empty(t, f.activity.List())
}

func TestStudioGenerateAppendsRecord(t *testing.T) {
	transformer := &fakeTransformer{
		generateFn: func(_ context.Context, _ string) ([]genai.Artifact, error) {
			return []genai.Artifact{"data:image/png;base64,one", "data:image/png;base64,two"}, nil
		},
	}
	f := newStudioFixture(t, transformer)

	res, err := f.studio.Generate(context.Background(), &dto.GenerateRequest{Instruction: "a lighthouse at dusk"})
	require.NoError(t, err)
	assert.Len(t, res.Outputs, 2)

	records := f.activity.List()
	require.Len(t, records, 1)
	assert.Equal(t, entity.ActivityGeneration, records[0].Category)
	assert.Equal(t, res.Outputs, records[0].Detail.(entity.GenerationDetail).Outputs)
}

func TestStudioGenerateTransformFailure(t *testing.T) {
	transformer := &fakeTransformer{
		generateFn: func(_ context.Context, _ string) ([]genai.Artifact, error) {
			return nil, errors.New("gemini returned zero image artifacts")
		},
	}
	f := newStudioFixture(t, transformer)

	_, err := f.studio.Generate(context.Background(), &dto.GenerateRequest{Instruction: "a lighthouse"})

	var se *apperror.ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "generate", se.Op)
	assert.Empty(t, f.activity.List())
}
