package generation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxDocumentPromptChars ограничивает префикс текста документа (в символах,
// не байтах), попадающий в промпт, чтобы уложиться в лимиты upstream-модели
const MaxDocumentPromptChars = 6000

const systemPrompt = "You are a quiz generation expert. Your task is to create high-quality, educational quiz questions based on the provided content."

// BuildPrompt детерминированно строит промпт из валидированных параметров.
// Тема вставляется verbatim; текст документа обрезается до ограниченного префикса.
func BuildPrompt(req Request) string {
	contentType := "topic"
	if req.FromDocument {
		contentType = "PDF document"
	}

	typeNames := make([]string, len(req.QuestionTypes))
	for i, qt := range req.QuestionTypes {
		typeNames[i] = humanizeTypeName(qt)
	}
	questionTypeDesc := strings.Join(typeNames, ", ")

	var contentSection string
	if req.FromDocument {
		contentSection = fmt.Sprintf("Here's the content extracted from the PDF:\n\n%s",
			truncateRunes(req.SourceText, MaxDocumentPromptChars))
	} else {
		contentSection = fmt.Sprintf("The topic is: %s", req.SourceText)
	}

	return fmt.Sprintf(`Please generate a quiz based on the following %[1]s.

The quiz should:
- Have exactly %[2]d questions
- Be at %[3]s difficulty level
- Include question types: %[4]s
- Each question should have a detailed explanation of the answer

%[5]s

The response should be a valid JSON object with the following structure:
{
  "title": "Quiz title related to the content",
  "questions": [
    {
      "questionText": "The question text",
      "options": ["Option 1", "Option 2", "Option 3", "Option 4"],
      "correctAnswer": "The correct answer exactly as it appears in options",
      "explanation": "Detailed explanation of why this is the correct answer",
      "type": "multipleChoice"
    }
  ]
}

The "type" field must be one of: multipleChoice, trueFalse, or shortAnswer.
For trueFalse questions, options should be ["True", "False"].
For shortAnswer questions, provide the exact expected answer in correctAnswer and an empty options array.

Important:
- Keep language clear and concise
- Ensure all questions are factually accurate
- Make sure the correctAnswer exactly matches one of the options
- For shortAnswer questions, keep answers concise (1-3 words) to make evaluation easier
- Focus on the most important concepts from the %[1]s
- Make sure explanations are educational and provide context

Please generate a complete, well-formatted JSON response with exactly %[2]d questions.`,
		contentType, req.QuestionCount, req.Difficulty, questionTypeDesc, contentSection)
}

// truncateRunes обрезает строку до max символов, не разрывая
// многобайтовые руны посередине
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// humanizeTypeName превращает camelCase-имя типа в читаемое:
// "multipleChoice" -> "multiple choice"
func humanizeTypeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
