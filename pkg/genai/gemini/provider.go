package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ai-studio-be/pkg/genai"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type GeminiProvider struct {
	ApiKey    string
	ModelName string
	BaseURL   string
	Client    *http.Client
}

// Ensure GeminiProvider implements Transformer
var _ genai.Transformer = &GeminiProvider{}

func NewGeminiProvider(apiKey, modelName string) *GeminiProvider {
	return &GeminiProvider{
		ApiKey:    apiKey,
		ModelName: modelName,
		BaseURL:   defaultBaseURL,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *geminiBlobPart `json:"inline_data,omitempty"`
}

type geminiBlobPart struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type geminiGenerationConfig struct {
	Temperature        float64  `json:"temperature,omitempty"`
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text       string `json:"text,omitempty"`
				InlineData *struct {
					MimeType string `json:"mimeType"`
					Data     string `json:"data"`
				} `json:"inlineData,omitempty"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// --- Interface Implementation ---

func (g *GeminiProvider) Analyze(ctx context.Context, instruction string, image genai.Image, opts ...genai.Option) (string, error) {
	parts := []geminiPart{
		{Text: instruction},
		{InlineData: &geminiBlobPart{
			MimeType: image.MimeType,
			Data:     base64.StdEncoding.EncodeToString(image.Data),
		}},
	}

	res, err := g.call(ctx, parts, nil, opts...)
	if err != nil {
		return "", err
	}

	text := collectText(res)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini returned no usable text")
	}
	return text, nil
}

func (g *GeminiProvider) Generate(ctx context.Context, instruction string, opts ...genai.Option) ([]genai.Artifact, error) {
	parts := []geminiPart{{Text: instruction}}

	res, err := g.call(ctx, parts, []string{"TEXT", "IMAGE"}, opts...)
	if err != nil {
		return nil, err
	}

	artifacts := collectArtifacts(res)
	if len(artifacts) == 0 {
		return nil, fmt.Errorf("gemini returned zero image artifacts")
	}
	return artifacts, nil
}

func (g *GeminiProvider) Edit(ctx context.Context, instruction string, image genai.Image, opts ...genai.Option) ([]genai.Artifact, error) {
	parts := []geminiPart{
		{Text: instruction},
		{InlineData: &geminiBlobPart{
			MimeType: image.MimeType,
			Data:     base64.StdEncoding.EncodeToString(image.Data),
		}},
	}

	res, err := g.call(ctx, parts, []string{"TEXT", "IMAGE"}, opts...)
	if err != nil {
		return nil, err
	}

	artifacts := collectArtifacts(res)
	if len(artifacts) == 0 {
		return nil, fmt.Errorf("gemini returned zero image artifacts")
	}
	return artifacts, nil
}

func (g *GeminiProvider) call(ctx context.Context, parts []geminiPart, modalities []string, opts ...genai.Option) (*geminiResponse, error) {
	options := &genai.Options{}
	for _, opt := range opts {
		opt(options)
	}

	model := g.ModelName
	if options.Model != "" {
		model = options.Model
	}

	reqPayload := geminiRequest{
		Contents: []geminiContent{{Parts: parts}},
	}
	if options.Temperature > 0 || len(modalities) > 0 {
		reqPayload.GenerationConfig = &geminiGenerationConfig{
			Temperature:        options.Temperature,
			ResponseModalities: modalities,
		}
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.BaseURL, model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", g.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(bodyBytes, &geminiResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &geminiResp, nil
}

func collectText(res *geminiResponse) string {
	var sb strings.Builder
	for _, cand := range res.Candidates {
		for _, part := range cand.Content.Parts {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

func collectArtifacts(res *geminiResponse) []genai.Artifact {
	var artifacts []genai.Artifact
	for _, cand := range res.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData == nil || part.InlineData.Data == "" {
				continue
			}
			mime := part.InlineData.MimeType
			if mime == "" {
				mime = "image/png"
			}
			artifacts = append(artifacts, genai.Artifact(
				fmt.Sprintf("data:%s;base64,%s", mime, part.InlineData.Data),
			))
		}
	}
	return artifacts
}
