// Package generation содержит адаптер внешнего генератора контента и
// нормализацию его слабо типизированного ответа в канонические сущности.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Request описывает валидированные параметры генерации. Неизменяемый
// снимок, из которого детерминированно строится промпт.
type Request struct {
	// SourceText - тема (verbatim) либо извлечённый текст документа
	SourceText    string
	FromDocument  bool
	QuestionCount int
	QuestionTypes []string
	Difficulty    string
}

// Provider определяет контракт внешнего генератора: промпт на входе,
// распарсенный сырой ответ на выходе. Ретраи на этом уровне не выполняются —
// политика повторов принадлежит вызывающему коду.
type Provider interface {
	GenerateQuiz(ctx context.Context, prompt string) (*RawQuiz, error)
}

// RawQuiz - сырой ответ генератора: заголовок и упорядоченный список
// вопросоподобных записей
type RawQuiz struct {
	Title     string        `json:"title"`
	Questions []RawQuestion `json:"questions"`
}

// RawQuestion - одна сырая запись вопроса. Поля передаются дальше как есть;
// никакой коррекции формулировок на этом уровне не происходит.
type RawQuestion struct {
	QuestionText  string        `json:"questionText"`
	Options       RawOptionList `json:"options"`
	CorrectAnswer string        `json:"correctAnswer"`
	Explanation   string        `json:"explanation"`
	Type          string        `json:"type"`
}

// RawOption - вариант ответа из сырого ответа. ID может отсутствовать.
type RawOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// RawOptionList принимает оба upstream-формата вариантов: массив простых
// строк либо массив объектов {id?, text}. Любая другая форма отклоняется
// (fail closed), а не приводится молча.
type RawOptionList []RawOption

// UnmarshalJSON реализует разбор обоих форматов вариантов
func (l *RawOptionList) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("options is not an array: %w", err)
	}

	out := make(RawOptionList, 0, len(items))
	for i, item := range items {
		trimmed := bytes.TrimSpace(item)
		if len(trimmed) == 0 {
			return fmt.Errorf("option %d is empty", i)
		}
		switch trimmed[0] {
		case '"':
			var text string
			if err := json.Unmarshal(trimmed, &text); err != nil {
				return fmt.Errorf("option %d: %w", i, err)
			}
			out = append(out, RawOption{Text: text})
		case '{':
			var opt RawOption
			if err := json.Unmarshal(trimmed, &opt); err != nil {
				return fmt.Errorf("option %d: %w", i, err)
			}
			if opt.Text == "" {
				return fmt.Errorf("option %d: object form requires a text field", i)
			}
			out = append(out, opt)
		default:
			return fmt.Errorf("option %d has unsupported shape", i)
		}
	}
	*l = out
	return nil
}

// DecodeRawQuiz разбирает текст ответа генератора. Отсутствие поля questions
// (в отличие от пустого массива) считается некорректным ответом.
func DecodeRawQuiz(data []byte) (*RawQuiz, error) {
	var probe struct {
		Title     string         `json:"title"`
		Questions *[]RawQuestion `json:"questions"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("malformed generation response: %w", err)
	}
	if probe.Questions == nil {
		return nil, fmt.Errorf("generation response is missing the questions field")
	}
	return &RawQuiz{Title: probe.Title, Questions: *probe.Questions}, nil
}
