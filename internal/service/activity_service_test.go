package service

import (
	"context"
	"errors"
	"testing"

	"ai-studio-be/internal/entity"
	"ai-studio-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingKV simulates a broken persistence collaborator.
type failingKV struct {
	readErr  error
	writeErr error
	stored   string
	found    bool
}

func (f *failingKV) Read(_ context.Context, _ string) (string, bool, error) {
	return f.stored, f.found, f.readErr
}

func (f *failingKV) Write(_ context.Context, _, value string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.stored = value
	f.found = true
	return nil
}

func TestActivityAppendLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueRepository()
	pub := &recordingPublisher{}

	first := NewActivityService(kv, pub, testLogger())
	analysis := entity.NewAnalysisRecord("describe this", []string{"data:image/png;base64,in"}, "a red square")
	edit := entity.NewEditRecord("make it blue", []string{"data:image/png;base64,in"}, []string{"data:image/png;base64,out"})
	first.Append(ctx, analysis)
	first.Append(ctx, edit)

	// A fresh service over the same store sees the same log.
	second := NewActivityService(kv, pub, testLogger())
	second.Load(ctx)

	records := second.List()
	require.Len(t, records, 2)

	// Newest first: the edit record leads.
	assert.Equal(t, edit.Id, records[0].Id)
	assert.Equal(t, edit.Instruction, records[0].Instruction)
	assert.Equal(t, edit.Detail, records[0].Detail)
	assert.True(t, edit.CreatedAt.Equal(records[0].CreatedAt))

	assert.Equal(t, analysis.Id, records[1].Id)
	assert.Equal(t, entity.ActivityAnalysis, records[1].Category)
	assert.Equal(t, analysis.Detail, records[1].Detail)
}

func TestActivityLoadMalformedPayloadStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueRepository()
	require.NoError(t, kv.Write(ctx, "studio:activity_log", "{not json"))

	svc := NewActivityService(kv, &recordingPublisher{}, testLogger())
	svc.Load(ctx)

	assert.Empty(t, svc.List())
}

func TestActivityLoadReadErrorStartsEmpty(t *testing.T) {
	kv := &failingKV{readErr: errors.New("connection refused")}

	svc := NewActivityService(kv, &recordingPublisher{}, testLogger())
	svc.Load(context.Background())

	assert.Empty(t, svc.List())
}

func TestActivityAppendSurvivesWriteFailure(t *testing.T) {
	ctx := context.Background()
	kv := &failingKV{writeErr: errors.New("disk full")}

	svc := NewActivityService(kv, &recordingPublisher{}, testLogger())
	svc.Append(ctx, entity.NewGenerationRecord("a cat", []string{"data:image/png;base64,out"}))

	// The in-memory log is authoritative even when persistence fails.
	assert.Len(t, svc.List(), 1)
}

func TestActivityClearPersistsEmptyLog(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueRepository()

	svc := NewActivityService(kv, &recordingPublisher{}, testLogger())
	svc.Append(ctx, entity.NewGenerationRecord("a cat", []string{"data:out"}))
	svc.Clear(ctx)

	assert.Empty(t, svc.List())

	// A restart must not resurrect cleared records.
	restarted := NewActivityService(kv, &recordingPublisher{}, testLogger())
	restarted.Load(ctx)
	assert.Empty(t, restarted.List())
}

func TestActivitySnapshotFlattensDetails(t *testing.T) {
	ctx := context.Background()
	svc := NewActivityService(memory.NewKeyValueRepository(), &recordingPublisher{}, testLogger())

	svc.Append(ctx, entity.NewAnalysisRecord("describe", []string{"data:in"}, "text"))
	svc.Append(ctx, entity.NewGenerationRecord("a cat", []string{"data:out"}))

	snap := svc.Snapshot()
	require.Len(t, snap, 2)

	assert.Equal(t, "generation", snap[0].Category)
	assert.Equal(t, []string{"data:out"}, snap[0].Outputs)
	assert.Empty(t, snap[0].ResultText)

	assert.Equal(t, "analysis", snap[1].Category)
	assert.Equal(t, []string{"data:in"}, snap[1].Inputs)
	assert.Equal(t, "text", snap[1].ResultText)
}
