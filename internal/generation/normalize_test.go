package generation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/quizify-api/internal/pkg/errors"
)

func rawMultipleChoice(n int) *RawQuiz {
	raw := &RawQuiz{Title: "Quiz on Photosynthesis"}
	for i := 0; i < n; i++ {
		raw.Questions = append(raw.Questions, RawQuestion{
			QuestionText: fmt.Sprintf("Question %d?", i+1),
			Options: RawOptionList{
				{Text: "A"}, {Text: "B"}, {Text: "C"}, {Text: "D"},
			},
			CorrectAnswer: "A",
			Explanation:   "Because A.",
			Type:          "multipleChoice",
		})
	}
	return raw
}

func TestNormalize_AssignsUniqueIdentifiers(t *testing.T) {
	// Arrange: 5 вопросов по 4 варианта — сценарий Photosynthesis
	raw := rawMultipleChoice(5)

	// Act
	questions, err := Normalize(raw)

	// Assert
	require.NoError(t, err)
	require.Len(t, questions, 5)

	seen := make(map[string]bool)
	for _, q := range questions {
		_, parseErr := uuid.Parse(q.ID)
		assert.NoError(t, parseErr, "ID вопроса должен быть валидным UUID")
		assert.False(t, seen[q.ID], "ID вопроса %s выдан дважды", q.ID)
		seen[q.ID] = true

		require.Len(t, q.Options, 4)
		optSeen := make(map[string]bool)
		for _, opt := range q.Options {
			assert.False(t, optSeen[opt.ID], "ID варианта %s не уникален в пределах вопроса", opt.ID)
			optSeen[opt.ID] = true
		}

		// correctAnswer совпадает с текстом ровно одного варианта
		matches := 0
		for _, opt := range q.Options {
			if opt.Text == q.CorrectAnswer {
				matches++
			}
		}
		assert.Equal(t, 1, matches)
	}
}

func TestNormalize_PreservesOrdering(t *testing.T) {
	// Порядок вопросов и вариантов значим и должен пережить нормализацию
	raw := &RawQuiz{
		Questions: []RawQuestion{
			{QuestionText: "First?", Options: RawOptionList{{Text: "x"}, {Text: "y"}}, Type: "multipleChoice"},
			{QuestionText: "Second?", Options: RawOptionList{{Text: "True"}, {Text: "False"}}, Type: "trueFalse"},
			{QuestionText: "Third?", Type: "shortAnswer"},
		},
	}

	questions, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, questions, 3)

	assert.Equal(t, "First?", questions[0].QuestionText)
	assert.Equal(t, "Second?", questions[1].QuestionText)
	assert.Equal(t, "Third?", questions[2].QuestionText)

	assert.Equal(t, "x", questions[0].Options[0].Text)
	assert.Equal(t, "y", questions[0].Options[1].Text)
}

func TestNormalize_TrueFalseOptions(t *testing.T) {
	raw := &RawQuiz{
		Questions: []RawQuestion{
			{
				QuestionText:  "The sky is green.",
				Options:       RawOptionList{{Text: "True"}, {Text: "False"}},
				CorrectAnswer: "False",
				Type:          "trueFalse",
			},
		},
	}

	questions, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, questions[0].Options, 2)
	assert.Equal(t, "True", questions[0].Options[0].Text)
	assert.Equal(t, "False", questions[0].Options[1].Text)
}

func TestNormalize_ShortAnswerHasNoOptions(t *testing.T) {
	raw := &RawQuiz{
		Questions: []RawQuestion{
			{QuestionText: "Name the capital of France.", CorrectAnswer: "Paris", Type: "shortAnswer"},
		},
	}

	questions, err := Normalize(raw)
	require.NoError(t, err)
	assert.Empty(t, questions[0].Options)
	assert.Equal(t, "Paris", questions[0].CorrectAnswer)
}

func TestNormalize_KeepsExistingOptionIDs(t *testing.T) {
	// У option-подобных объектов с ID идентификатор сохраняется,
	// недостающие — дозаполняются
	raw := &RawQuiz{
		Questions: []RawQuestion{
			{
				QuestionText: "Q?",
				Options: RawOptionList{
					{ID: "keep-me", Text: "A"},
					{Text: "B"},
				},
				Type: "multipleChoice",
			},
		},
	}

	questions, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "keep-me", questions[0].Options[0].ID)
	assert.NotEmpty(t, questions[0].Options[1].ID)
}

func TestNormalize_PassesFieldsThroughVerbatim(t *testing.T) {
	// Формулировки не корректируются, даже если correctAnswer не совпадает
	// ни с одним вариантом — это забота этапа оценивания
	raw := &RawQuiz{
		Questions: []RawQuestion{
			{
				QuestionText:  "Q?",
				Options:       RawOptionList{{Text: "Paris"}, {Text: "London"}},
				CorrectAnswer: "Paris.",
				Explanation:   "  padded explanation  ",
				Type:          "multipleChoice",
			},
		},
	}

	questions, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "Paris.", questions[0].CorrectAnswer)
	assert.Equal(t, "  padded explanation  ", questions[0].Explanation)
	assert.Equal(t, "multipleChoice", questions[0].Type)
}

func TestNormalize_MissingQuestionText_FailsWhole(t *testing.T) {
	raw := &RawQuiz{
		Questions: []RawQuestion{
			{QuestionText: "Valid?", Type: "shortAnswer"},
			{Type: "shortAnswer"}, // без questionText
		},
	}

	questions, err := Normalize(raw)
	assert.Nil(t, questions, "Частичная викторина не возвращается")
	assert.True(t, errors.Is(err, apperrors.ErrGeneration))
}

func TestNormalize_MissingType_FailsWhole(t *testing.T) {
	raw := &RawQuiz{
		Questions: []RawQuestion{
			{QuestionText: "No type?"},
		},
	}

	_, err := Normalize(raw)
	assert.True(t, errors.Is(err, apperrors.ErrGeneration))
}

func TestToEntities_LeavesIDAllocationToStorage(t *testing.T) {
	questions, err := Normalize(rawMultipleChoice(2))
	require.NoError(t, err)

	entities := ToEntities(questions)
	require.Len(t, entities, 2)
	for _, e := range entities {
		assert.Zero(t, e.ID, "Целочисленный ID назначает хранилище")
		assert.Len(t, e.Options, 4)
	}
}
