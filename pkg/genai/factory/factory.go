package factory

import (
	"fmt"

	"ai-studio-be/pkg/genai"
	"ai-studio-be/pkg/genai/gemini"
)

func NewTransformer(providerType, modelName, apiKey string) (genai.Transformer, error) {
	switch providerType {
	case "gemini":
		if modelName == "" {
			modelName = "gemini-2.0-flash-exp" // Default
		}
		return gemini.NewGeminiProvider(apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported transform provider: %s", providerType)
	}
}
