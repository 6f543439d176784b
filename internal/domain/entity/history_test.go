package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizSnapshot_ScanValue_RoundTrip(t *testing.T) {
	// Arrange: снимок с вложенными вопросами
	original := QuizSnapshot{
		ID:            42,
		Title:         "Quiz on Photosynthesis",
		Topic:         "Photosynthesis",
		QuestionCount: 1,
		Difficulty:    DifficultyEasy,
		QuestionTypes: StringArray{QuestionTypeMultipleChoice},
		Questions: []Question{
			{
				ID:            7,
				QuizID:        42,
				QuestionText:  "What do plants absorb?",
				Options:       OptionList{{ID: "a", Text: "CO2"}, {ID: "b", Text: "O2"}},
				CorrectAnswer: "CO2",
				Explanation:   "Plants absorb carbon dioxide.",
				Type:          QuestionTypeMultipleChoice,
			},
		},
		CreatedAt: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	}

	// Act
	value, err := original.Value()
	require.NoError(t, err)

	var restored QuizSnapshot
	require.NoError(t, restored.Scan(value))

	// Assert
	assert.Equal(t, original, restored)
}

func TestResultSnapshot_ScanValue_RoundTrip(t *testing.T) {
	original := ResultSnapshot{
		QuizID:         42,
		Score:          50,
		TotalQuestions: 2,
		CorrectCount:   1,
		IncorrectCount: 1,
		IncorrectAnswers: []IncorrectAnswer{
			{Question: "q2", UserAnswer: "wrong", CorrectAnswer: "B", Explanation: "see notes"},
		},
	}

	value, err := original.Value()
	require.NoError(t, err)

	var restored ResultSnapshot
	require.NoError(t, restored.Scan(value))
	assert.Equal(t, original, restored)
}
