package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quizify-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizify-api/internal/pkg/errors"
	"github.com/yourusername/quizify-api/internal/repository/memory"
)

func historyQuizFixture(id uint, topic string) *entity.Quiz {
	return &entity.Quiz{
		ID:            id,
		Title:         "Quiz on " + topic,
		Topic:         topic,
		QuestionCount: 1,
		Difficulty:    entity.DifficultyEasy,
		QuestionTypes: entity.StringArray{entity.QuestionTypeTrueFalse},
		Questions: []entity.Question{
			{
				ID:            id*10 + 1,
				QuizID:        id,
				QuestionText:  "Is " + topic + " a thing?",
				Options:       entity.OptionList{{ID: "a", Text: "True"}, {ID: "b", Text: "False"}},
				CorrectAnswer: "True",
				Type:          entity.QuestionTypeTrueFalse,
			},
		},
	}
}

func historyResultFixture(quizID uint) *entity.QuizResult {
	return &entity.QuizResult{
		QuizID:           quizID,
		Score:            100,
		TotalQuestions:   1,
		CorrectCount:     1,
		IncorrectCount:   0,
		IncorrectAnswers: []entity.IncorrectAnswer{},
	}
}

func TestHistoryService_RecordAndList(t *testing.T) {
	storage := memory.NewStorage()
	svc := NewHistoryService(storage.HistoryRepo())

	first, err := svc.Record(historyQuizFixture(1, "Tides"), historyResultFixture(1))
	require.NoError(t, err)
	second, err := svc.Record(historyQuizFixture(2, "Magma"), historyResultFixture(2))
	require.NoError(t, err)

	assert.NotZero(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	records, err := svc.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Новые записи первыми
	assert.Equal(t, second.ID, records[0].ID)
	assert.Equal(t, first.ID, records[1].ID)
}

func TestHistoryService_RecordKeepsFullSnapshot(t *testing.T) {
	storage := memory.NewStorage()
	svc := NewHistoryService(storage.HistoryRepo())

	quiz := historyQuizFixture(7, "Glaciers")
	record, err := svc.Record(quiz, historyResultFixture(7))
	require.NoError(t, err)

	// Запись держит копию: мутация исходной викторины на историю не влияет
	quiz.Title = "mutated"
	quiz.Questions[0].CorrectAnswer = "False"

	loaded, err := svc.FindByQuizID(7)
	require.NoError(t, err)
	assert.Equal(t, record.ID, loaded.ID)
	assert.Equal(t, "Quiz on Glaciers", loaded.Quiz.Title)
	require.Len(t, loaded.Quiz.Questions, 1)
	assert.Equal(t, "True", loaded.Quiz.Questions[0].CorrectAnswer)
	assert.Equal(t, 100, loaded.Result.Score)
}

func TestHistoryService_RepeatAttemptsAccumulate(t *testing.T) {
	storage := memory.NewStorage()
	svc := NewHistoryService(storage.HistoryRepo())

	quiz := historyQuizFixture(3, "Rust")
	_, err := svc.Record(quiz, historyResultFixture(3))
	require.NoError(t, err)
	retry := historyResultFixture(3)
	retry.Score = 0
	retry.CorrectCount = 0
	retry.IncorrectCount = 1
	latest, err := svc.Record(quiz, retry)
	require.NoError(t, err)

	records, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// FindByQuizID отдает последнюю попытку
	found, err := svc.FindByQuizID(3)
	require.NoError(t, err)
	assert.Equal(t, latest.ID, found.ID)
	assert.Equal(t, 0, found.Result.Score)
}

func TestHistoryService_Delete_RemovesAllAttempts(t *testing.T) {
	storage := memory.NewStorage()
	svc := NewHistoryService(storage.HistoryRepo())

	quiz := historyQuizFixture(5, "Comets")
	_, err := svc.Record(quiz, historyResultFixture(5))
	require.NoError(t, err)
	_, err = svc.Record(quiz, historyResultFixture(5))
	require.NoError(t, err)
	kept, err := svc.Record(historyQuizFixture(6, "Asteroids"), historyResultFixture(6))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(5))

	records, err := svc.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, kept.ID, records[0].ID)

	_, err = svc.FindByQuizID(5)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
