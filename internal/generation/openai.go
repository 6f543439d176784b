package generation

import (
	"context"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"

	apperrors "github.com/yourusername/quizify-api/internal/pkg/errors"
)

// OpenAIConfig содержит настройки OpenAI-совместимого провайдера
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// OpenAIProvider реализует Provider поверх OpenAI SDK.
// Через BaseURL работает и с другими OpenAI-совместимыми API.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider создает новый OpenAI-провайдер
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4o
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}, nil
}

// GenerateQuiz выполняет один запрос к модели в JSON-режиме и разбирает ответ.
// Любой сбой (транспорт, пустой ответ, некорректный JSON) — ErrGeneration;
// повторных попыток на этом уровне нет. Запрос отменяется через ctx.
func (p *OpenAIProvider) GenerateQuiz(ctx context.Context, prompt string) (*RawQuiz, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		// Детали upstream-сбоя остаются в логах, клиенту уходит общий ErrGeneration
		log.Printf("[OpenAIProvider] Chat completion failed: %v", err)
		return nil, fmt.Errorf("%w: upstream call failed", apperrors.ErrGeneration)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", apperrors.ErrGeneration)
	}

	raw, err := DecodeRawQuiz([]byte(resp.Choices[0].Message.Content))
	if err != nil {
		log.Printf("[OpenAIProvider] Response decode failed: %v", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrGeneration, err)
	}
	return raw, nil
}
