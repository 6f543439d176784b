package service

import (
	"time"

	"github.com/yourusername/quizify-api/internal/domain/entity"
	"github.com/yourusername/quizify-api/internal/domain/repository"
)

// HistoryService ведет журнал пройденных викторин. Каждая запись держит
// ПОЛНУЮ копию викторины и результата, а не ссылку: последующие изменения
// или удаление живой викторины историю не затрагивают.
type HistoryService struct {
	historyRepo repository.HistoryRepository
}

// NewHistoryService создает новый сервис истории
func NewHistoryService(historyRepo repository.HistoryRepository) *HistoryService {
	return &HistoryService{historyRepo: historyRepo}
}

// Record добавляет запись о завершённой попытке (новые записи — первыми)
func (s *HistoryService) Record(quiz *entity.Quiz, result *entity.QuizResult) (*entity.HistoryRecord, error) {
	// Слайс вопросов копируется отдельно: снимок не должен разделять
	// backing array с живой викториной
	snapshot := *quiz
	snapshot.Questions = append([]entity.Question(nil), quiz.Questions...)

	record := &entity.HistoryRecord{
		QuizID: quiz.ID,
		Quiz:   entity.QuizSnapshot(snapshot),
		Result: entity.ResultSnapshot(*result),
		Date:   time.Now(),
	}
	if err := s.historyRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// List возвращает все записи истории, новые первыми
func (s *HistoryService) List() ([]entity.HistoryRecord, error) {
	return s.historyRepo.List()
}

// FindByQuizID возвращает первую запись истории для викторины
func (s *HistoryService) FindByQuizID(quizID uint) (*entity.HistoryRecord, error) {
	return s.historyRepo.FindByQuizID(quizID)
}

// Delete удаляет все записи истории для викторины. Сама викторина в
// хранилище остаётся — удаляется только история.
func (s *HistoryService) Delete(quizID uint) error {
	return s.historyRepo.DeleteByQuizID(quizID)
}
