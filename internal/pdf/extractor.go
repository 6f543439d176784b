// Package pdf содержит адаптер извлечения текста из загруженных документов.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	apperrors "github.com/yourusername/quizify-api/internal/pkg/errors"
)

// MinMeaningfulTextLength - минимальная длина извлечённого текста, при
// которой документ считается пригодным для генерации
const MinMeaningfulTextLength = 50

// ExtractText извлекает плоский текст из байтов PDF-документа.
// Нечитаемый документ или текст короче MinMeaningfulTextLength — ErrExtraction.
func ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: unreadable document: %v", apperrors.ErrExtraction, err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrExtraction, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrExtraction, err)
	}

	text := buf.String()
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinMeaningfulTextLength {
		return "", fmt.Errorf("%w: no meaningful text could be extracted from the PDF", apperrors.ErrExtraction)
	}
	return text, nil
}
