package generation

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_TopicVerbatim(t *testing.T) {
	req := Request{
		SourceText:    "Photosynthesis",
		QuestionCount: 5,
		QuestionTypes: []string{"multipleChoice"},
		Difficulty:    "easy",
	}

	prompt := BuildPrompt(req)

	assert.Contains(t, prompt, "The topic is: Photosynthesis")
	assert.Contains(t, prompt, "Have exactly 5 questions")
	assert.Contains(t, prompt, "at easy difficulty level")
	assert.Contains(t, prompt, "question types: multiple choice")
	assert.Contains(t, prompt, "following topic")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	req := Request{
		SourceText:    "Go concurrency",
		QuestionCount: 10,
		QuestionTypes: []string{"multipleChoice", "trueFalse"},
		Difficulty:    "hard",
	}

	assert.Equal(t, BuildPrompt(req), BuildPrompt(req), "Промпт строится детерминированно")
}

func TestBuildPrompt_DocumentTruncatedTo6000(t *testing.T) {
	longText := strings.Repeat("a", MaxDocumentPromptChars+500)
	req := Request{
		SourceText:    longText,
		FromDocument:  true,
		QuestionCount: 3,
		QuestionTypes: []string{"shortAnswer"},
		Difficulty:    "medium",
	}

	prompt := BuildPrompt(req)

	assert.Contains(t, prompt, "PDF document")
	assert.Contains(t, prompt, "content extracted from the PDF")
	// В промпт попадает только ограниченный префикс документа
	assert.Contains(t, prompt, strings.Repeat("a", MaxDocumentPromptChars))
	assert.NotContains(t, prompt, strings.Repeat("a", MaxDocumentPromptChars+1))
}

func TestBuildPrompt_TruncationKeepsRunesIntact(t *testing.T) {
	// Многобайтовый текст длиннее лимита: обрезка не должна разрывать руну
	longText := strings.Repeat("ф", MaxDocumentPromptChars+500)
	req := Request{
		SourceText:    longText,
		FromDocument:  true,
		QuestionCount: 3,
		QuestionTypes: []string{"shortAnswer"},
		Difficulty:    "medium",
	}

	prompt := BuildPrompt(req)

	assert.True(t, utf8.ValidString(prompt), "Промпт остаётся валидным UTF-8")
	assert.Contains(t, prompt, strings.Repeat("ф", MaxDocumentPromptChars))
	assert.NotContains(t, prompt, strings.Repeat("ф", MaxDocumentPromptChars+1))
}

func TestBuildPrompt_ShortDocumentNotTruncated(t *testing.T) {
	req := Request{
		SourceText:    "short document body",
		FromDocument:  true,
		QuestionCount: 1,
		QuestionTypes: []string{"trueFalse"},
		Difficulty:    "easy",
	}

	prompt := BuildPrompt(req)
	assert.Contains(t, prompt, "short document body")
}

func TestHumanizeTypeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"multipleChoice", "multiple choice"},
		{"trueFalse", "true false"},
		{"shortAnswer", "short answer"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeTypeName(tt.in))
	}
}
