package factory

import (
	"fmt"

	"rag-assessment-be/pkg/llm"
	"rag-assessment-be/pkg/llm/groq"
	"rag-assessment-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, baseURL, groqAPIKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "groq":
		if groqAPIKey == "" {
			return nil, fmt.Errorf("groq api key is required for the groq LLM provider")
		}
		return groq.NewGroqProvider(groqAPIKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
