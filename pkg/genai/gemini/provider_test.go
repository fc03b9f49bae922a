package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-studio-be/pkg/genai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	provider := NewGeminiProvider("test-key", "test-model")
	provider.BaseURL = srv.URL
	return provider
}

func candidateBody(parts ...map[string]interface{}) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{"parts": parts}},
		},
	})
	return body
}

func TestGeminiAnalyzeCollectsText(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 2)
		assert.Equal(t, "describe this", req.Contents[0].Parts[0].Text)
		assert.Equal(t, "image/png", req.Contents[0].Parts[1].InlineData.MimeType)

		w.Write(candidateBody(
			map[string]interface{}{"text": "a red "},
			map[string]interface{}{"text": "square"},
		))
	})

	text, err := provider.Analyze(context.Background(), "describe this", genai.Image{
		MimeType: "image/png",
		Data:     []byte{1, 2, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "a red square", text)
}

func TestGeminiAnalyzeNoUsableText(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write(candidateBody(map[string]interface{}{"text": "   "}))
	})

	_, err := provider.Analyze(context.Background(), "describe", genai.Image{MimeType: "image/png"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable text")
}

func TestGeminiGenerateCollectsArtifacts(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.GenerationConfig)
		assert.Equal(t, []string{"TEXT", "IMAGE"}, req.GenerationConfig.ResponseModalities)

		w.Write(candidateBody(
			map[string]interface{}{"text": "here you go"},
			map[string]interface{}{"inlineData": map[string]string{"mimeType": "image/png", "data": "QUJD"}},
			map[string]interface{}{"inlineData": map[string]string{"data": "REVG"}},
		))
	})

	artifacts, err := provider.Generate(context.Background(), "a lighthouse")
	require.NoError(t, err)
	require.Len(t, artifacts, 2)
	assert.Equal(t, genai.Artifact("data:image/png;base64,QUJD"), artifacts[0])
	// Missing mime type falls back to image/png.
	assert.Equal(t, genai.Artifact("data:image/png;base64,REVG"), artifacts[1])
}

func TestGeminiGenerateZeroArtifacts(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write(candidateBody(map[string]interface{}{"text": "I cannot draw that"}))
	})

	_, err := provider.Generate(context.Background(), "a lighthouse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zero image artifacts")
}

func TestGeminiEditZeroArtifacts(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write(candidateBody())
	})

	_, err := provider.Edit(context.Background(), "make it blue", genai.Image{MimeType: "image/png"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zero image artifacts")
}

func TestGeminiNonOKStatus(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	})

	_, err := provider.Generate(context.Background(), "a lighthouse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestGeminiModelOverride(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/other-model:generateContent", r.URL.Path)
		w.Write(candidateBody(map[string]interface{}{"text": "ok"}))
	})

	_, err := provider.Analyze(context.Background(), "describe", genai.Image{MimeType: "image/png"}, genai.WithModel("other-model"))
	require.NoError(t, err)
}
