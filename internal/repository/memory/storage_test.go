package memory

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quizify-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizify-api/internal/pkg/errors"
)

func TestStorage_Create_AssignsSequentialIDs(t *testing.T) {
	// Arrange
	s := NewStorage()

	// Act
	first := &entity.Quiz{Title: "First", Topic: "a"}
	second := &entity.Quiz{Title: "Second", Topic: "b"}
	require.NoError(t, s.Create(first))
	require.NoError(t, s.Create(second))

	// Assert: счётчик монотонный, ID не переиспользуются
	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
}

func TestStorage_SeparateCountersPerEntityKind(t *testing.T) {
	s := NewStorage()

	quiz := &entity.Quiz{Title: "Quiz"}
	require.NoError(t, s.Create(quiz))

	// Счётчик вопросов независим от счётчика викторин
	question := &entity.Question{QuizID: quiz.ID, QuestionText: "Q?", Type: entity.QuestionTypeShortAnswer}
	require.NoError(t, s.QuestionRepo().Create(question))
	assert.Equal(t, uint(1), question.ID)
}

func TestStorage_GetByID_NotFound(t *testing.T) {
	s := NewStorage()

	_, err := s.GetByID(99)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "Отсутствие записи — ErrNotFound, не паника")
}

func TestStorage_CreateWithQuestions_Atomic(t *testing.T) {
	// Arrange
	s := NewStorage()
	quiz := &entity.Quiz{Title: "Quiz on Go", Topic: "Go", QuestionCount: 2}
	questions := []entity.Question{
		{QuestionText: "Q1", CorrectAnswer: "A", Type: entity.QuestionTypeShortAnswer},
		{QuestionText: "Q2", CorrectAnswer: "B", Type: entity.QuestionTypeShortAnswer},
	}

	// Act
	require.NoError(t, s.CreateWithQuestions(quiz, questions))

	// Assert: вопросы привязаны и читаются в порядке создания
	loaded, err := s.GetWithQuestions(quiz.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Questions, 2)
	assert.Equal(t, "Q1", loaded.Questions[0].QuestionText)
	assert.Equal(t, "Q2", loaded.Questions[1].QuestionText)
	assert.Equal(t, quiz.ID, loaded.Questions[0].QuizID)
}

func TestStorage_ConcurrentCreate_UniqueIDs(t *testing.T) {
	// Инкремент счётчика и выдача ID — одна атомарная операция под мьютексом
	s := NewStorage()

	const workers = 50
	ids := make(chan uint, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			quiz := &entity.Quiz{Title: "concurrent"}
			if err := s.Create(quiz); err == nil {
				ids <- quiz.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint]bool)
	for id := range ids {
		assert.False(t, seen[id], "ID %d выдан дважды", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

func TestStorage_History_NewestFirst(t *testing.T) {
	// Arrange
	s := NewStorage()
	repo := s.HistoryRepo()

	for i := uint(1); i <= 3; i++ {
		require.NoError(t, repo.Create(&entity.HistoryRecord{
			QuizID: i,
			Quiz:   entity.QuizSnapshot{ID: i},
			Result: entity.ResultSnapshot{QuizID: i},
		}))
	}

	// Act
	records, err := repo.List()
	require.NoError(t, err)

	// Assert: хранение — вставка в голову, чтение — новые первыми
	require.Len(t, records, 3)
	assert.Equal(t, uint(3), records[0].QuizID)
	assert.Equal(t, uint(2), records[1].QuizID)
	assert.Equal(t, uint(1), records[2].QuizID)
}

func TestStorage_History_DeleteByQuizID(t *testing.T) {
	// Сценарий из спецификации поведения: удаление id 42 из истории с тремя
	// записями оставляет ровно две, и ни одна не про викторину 42.
	s := NewStorage()
	repo := s.HistoryRepo()

	for _, id := range []uint{41, 42, 43} {
		require.NoError(t, repo.Create(&entity.HistoryRecord{QuizID: id, Quiz: entity.QuizSnapshot{ID: id}}))
	}

	require.NoError(t, repo.DeleteByQuizID(42))

	records, err := repo.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, uint(43), records[0].QuizID, "Порядок остальных записей сохранён")
	assert.Equal(t, uint(41), records[1].QuizID)

	_, err = repo.FindByQuizID(42)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestStorage_History_DeleteRemovesAllMatches(t *testing.T) {
	// Уникальность quizID в истории не предполагается — удаляются все совпадения
	s := NewStorage()
	repo := s.HistoryRepo()

	require.NoError(t, repo.Create(&entity.HistoryRecord{QuizID: 7}))
	require.NoError(t, repo.Create(&entity.HistoryRecord{QuizID: 7}))
	require.NoError(t, repo.Create(&entity.HistoryRecord{QuizID: 8}))

	require.NoError(t, repo.DeleteByQuizID(7))

	records, err := repo.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, uint(8), records[0].QuizID)
}
