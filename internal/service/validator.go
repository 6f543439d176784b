package service

import (
	"fmt"
	"unicode/utf8"

	"github.com/yourusername/quizify-api/internal/domain/entity"
	"github.com/yourusername/quizify-api/internal/generation"
	apperrors "github.com/yourusername/quizify-api/internal/pkg/errors"
)

// Границы параметров генерации
const (
	MinQuestionCount = 1
	MaxQuestionCount = 30

	// MinTopicLength - минимальная длина темы
	MinTopicLength = 2
	// MinDocumentTextLength - минимальная длина извлечённого текста документа,
	// при которой запрос вообще допускается до генерации
	MinDocumentTextLength = 100
)

// GenerationParams - параметры генерации, задаваемые пользователем на шаге
// настройки (без источника контента)
type GenerationParams struct {
	QuestionCount int
	QuestionTypes []string
	Difficulty    string
}

// validateGenerationRequest проверяет контракт параметров ДО любого внешнего
// вызова. Чистая синхронная функция без I/O. Возвращает ValidationError со
// списком ВСЕХ нарушенных полей, а не только первого.
func validateGenerationRequest(req generation.Request) error {
	fields := map[string]string{}

	collectParamViolations(GenerationParams{
		QuestionCount: req.QuestionCount,
		QuestionTypes: req.QuestionTypes,
		Difficulty:    req.Difficulty,
	}, fields)

	// Лимиты заданы в символах, не байтах: кириллическая тема из двух букв валидна
	if req.FromDocument {
		if utf8.RuneCountInString(req.SourceText) < MinDocumentTextLength {
			fields["sourceText"] = fmt.Sprintf("document text must be at least %d characters", MinDocumentTextLength)
		}
	} else {
		if utf8.RuneCountInString(req.SourceText) < MinTopicLength {
			fields["topic"] = fmt.Sprintf("topic must be at least %d characters", MinTopicLength)
		}
	}

	if len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}
	return nil
}

// validateGenerationParams проверяет пользовательские параметры без источника
// контента (используется на шаге настройки черновика)
func validateGenerationParams(params GenerationParams) error {
	fields := map[string]string{}
	collectParamViolations(params, fields)
	if len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}
	return nil
}

func collectParamViolations(params GenerationParams, fields map[string]string) {
	if params.QuestionCount < MinQuestionCount || params.QuestionCount > MaxQuestionCount {
		fields["questionCount"] = fmt.Sprintf("must be between %d and %d", MinQuestionCount, MaxQuestionCount)
	}

	if len(params.QuestionTypes) == 0 {
		fields["questionTypes"] = "must not be empty"
	} else {
		for _, qt := range params.QuestionTypes {
			if !entity.IsValidQuestionType(qt) {
				fields["questionTypes"] = fmt.Sprintf("unrecognized question type %q", qt)
				break
			}
		}
	}

	if !entity.IsValidDifficulty(params.Difficulty) {
		fields["difficulty"] = "must be one of easy, medium, hard"
	}
}
