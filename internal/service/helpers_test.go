package service

import (
	"context"
	"fmt"
	"sync"

	"ai-studio-be/internal/pkg/logger"
	"ai-studio-be/pkg/events"
	"ai-studio-be/pkg/genai"
)

// fakeHandleRepo counts Mint/Release calls so tests can assert the
// release-exactly-once invariant.
type fakeHandleRepo struct {
	mu       sync.Mutex
	next     int
	live     map[string][]byte
	releases map[string]int
}

func newFakeHandleRepo() *fakeHandleRepo {
	return &fakeHandleRepo{
		live:     make(map[string][]byte),
		releases: make(map[string]int),
	}
}

func (r *fakeHandleRepo) Mint(payload []byte, _ string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	handle := fmt.Sprintf("h-%d", r.next)
	r.live[handle] = payload
	return handle
}

func (r *fakeHandleRepo) Resolve(handle string) ([]byte, string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payload, found := r.live[handle]
	return payload, "image/png", found
}

func (r *fakeHandleRepo) Release(handle string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releases[handle]++
	delete(r.live, handle)
}

func (r *fakeHandleRepo) releaseCount(handle string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.releases[handle]
}

func (r *fakeHandleRepo) liveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// recordingPublisher captures published events in order.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

// fakeTransformer lets each test script the remote backend.
type fakeTransformer struct {
	analyzeFn  func(ctx context.Context, instruction string, image genai.Image) (string, error)
	generateFn func(ctx context.Context, instruction string) ([]genai.Artifact, error)
	editFn     func(ctx context.Context, instruction string, image genai.Image) ([]genai.Artifact, error)
}

func (f *fakeTransformer) Analyze(ctx context.Context, instruction string, image genai.Image, _ ...genai.Option) (string, error) {
	return f.analyzeFn(ctx, instruction, image)
}

func (f *fakeTransformer) Generate(ctx context.Context, instruction string, _ ...genai.Option) ([]genai.Artifact, error) {
	return f.generateFn(ctx, instruction)
}

func (f *fakeTransformer) Edit(ctx context.Context, instruction string, image genai.Image, _ ...genai.Option) ([]genai.Artifact, error) {
	return f.editFn(ctx, instruction, image)
}

func testLogger() logger.ILogger {
	return &nopLogger{}
}

type nopLogger struct{}

func (*nopLogger) Debug(string, string, map[string]interface{}) {}
func (*nopLogger) Info(string, string, map[string]interface{})  {}
func (*nopLogger) Warn(string, string, map[string]interface{})  {}
func (*nopLogger) Error(string, string, map[string]interface{}) {}
func (*nopLogger) Sync() error                                  { return nil }
