// Package memory содержит потокобезопасную реализацию репозиториев в памяти.
// Используется в тестах и как драйвер хранения для однопроцессного запуска
// без PostgreSQL (database.driver: memory).
package memory

import (
	"sync"
	"time"

	"github.com/yourusername/quizify-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizify-api/internal/pkg/errors"
)

// Storage реализует repository.QuizRepository, repository.QuestionRepository
// и repository.HistoryRepository поверх слайсов в памяти.
// На каждый вид сущности — свой монотонный счётчик идентификаторов;
// выдача ID атомарна относительно конкурентных созданий (общий мьютекс).
type Storage struct {
	mu sync.Mutex

	quizzes   []entity.Quiz
	questions []entity.Question
	history   []entity.HistoryRecord

	quizID     uint
	questionID uint
	historyID  uint
}

// NewStorage создает новое хранилище в памяти
func NewStorage() *Storage {
	return &Storage{}
}

// Create создает новую викторину
func (s *Storage) Create(quiz *entity.Quiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createQuizLocked(quiz)
	return nil
}

// CreateWithQuestions атомарно создает викторину вместе с вопросами.
// Мьютекс удерживается на всю операцию: наблюдать викторину без её вопросов
// извне невозможно.
func (s *Storage) CreateWithQuestions(quiz *entity.Quiz, questions []entity.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.createQuizLocked(quiz)
	for i := range questions {
		questions[i].QuizID = quiz.ID
		s.createQuestionLocked(&questions[i])
	}
	quiz.Questions = questions
	return nil
}

func (s *Storage) createQuizLocked(quiz *entity.Quiz) {
	s.quizID++
	quiz.ID = s.quizID
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = time.Now()
	}
	stored := *quiz
	stored.Questions = nil // вопросы живут в своей коллекции
	s.quizzes = append(s.quizzes, stored)
}

// GetByID возвращает викторину по ID
func (s *Storage) GetByID(id uint) (*entity.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.quizzes {
		if s.quizzes[i].ID == id {
			quiz := s.quizzes[i]
			return &quiz, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// GetWithQuestions возвращает викторину вместе с вопросами
func (s *Storage) GetWithQuestions(id uint) (*entity.Quiz, error) {
	quiz, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	questions, err := s.GetByQuizID(id)
	if err != nil {
		return nil, err
	}
	quiz.Questions = questions
	return quiz, nil
}

// CreateQuestion-часть интерфейса

// Create (вопрос) создает новый вопрос
func (s *Storage) CreateQuestion(question *entity.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createQuestionLocked(question)
	return nil
}

// CreateBatch создает несколько вопросов
func (s *Storage) CreateBatch(questions []entity.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range questions {
		s.createQuestionLocked(&questions[i])
	}
	return nil
}

func (s *Storage) createQuestionLocked(question *entity.Question) {
	s.questionID++
	question.ID = s.questionID
	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now()
	}
	s.questions = append(s.questions, *question)
}

// GetByQuizID возвращает вопросы викторины в порядке создания
func (s *Storage) GetByQuizID(quizID uint) ([]entity.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []entity.Question
	for i := range s.questions {
		if s.questions[i].QuizID == quizID {
			result = append(result, s.questions[i])
		}
	}
	return result, nil
}

// QuestionRepo возвращает адаптер к интерфейсу repository.QuestionRepository.
// Отдельный тип нужен, потому что у QuizRepository и QuestionRepository
// совпадает имя метода Create.
func (s *Storage) QuestionRepo() *QuestionStorage {
	return &QuestionStorage{s: s}
}

// QuestionStorage реализует repository.QuestionRepository поверх общего Storage
type QuestionStorage struct {
	s *Storage
}

// Create создает новый вопрос
func (q *QuestionStorage) Create(question *entity.Question) error {
	return q.s.CreateQuestion(question)
}

// CreateBatch создает несколько вопросов
func (q *QuestionStorage) CreateBatch(questions []entity.Question) error {
	return q.s.CreateBatch(questions)
}

// GetByQuizID возвращает вопросы викторины
func (q *QuestionStorage) GetByQuizID(quizID uint) ([]entity.Question, error) {
	return q.s.GetByQuizID(quizID)
}

// История

// CreateHistory добавляет запись истории в начало коллекции (новые — первыми).
// Read-modify-write выполняется под мьютексом: критическая секция для
// многопоточного использования.
func (s *Storage) CreateHistory(record *entity.HistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.historyID++
	record.ID = s.historyID
	if record.Date.IsZero() {
		record.Date = time.Now()
	}
	s.history = append([]entity.HistoryRecord{*record}, s.history...)
	return nil
}

// ListHistory возвращает копию всех записей истории, новые первыми
func (s *Storage) ListHistory() ([]entity.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]entity.HistoryRecord, len(s.history))
	copy(result, s.history)
	return result, nil
}

// FindHistoryByQuizID возвращает первую запись с данным quizID
func (s *Storage) FindHistoryByQuizID(quizID uint) (*entity.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.history {
		if s.history[i].QuizID == quizID {
			record := s.history[i]
			return &record, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// DeleteHistoryByQuizID удаляет все записи с данным quizID, сохраняя порядок остальных
func (s *Storage) DeleteHistoryByQuizID(quizID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.history[:0:0]
	for i := range s.history {
		if s.history[i].QuizID != quizID {
			filtered = append(filtered, s.history[i])
		}
	}
	s.history = filtered
	return nil
}

// HistoryRepo возвращает адаптер к интерфейсу repository.HistoryRepository
func (s *Storage) HistoryRepo() *HistoryStorage {
	return &HistoryStorage{s: s}
}

// HistoryStorage реализует repository.HistoryRepository поверх общего Storage
type HistoryStorage struct {
	s *Storage
}

// Create добавляет запись истории
func (h *HistoryStorage) Create(record *entity.HistoryRecord) error {
	return h.s.CreateHistory(record)
}

// List возвращает записи истории, новые первыми
func (h *HistoryStorage) List() ([]entity.HistoryRecord, error) {
	return h.s.ListHistory()
}

// FindByQuizID возвращает первую запись для викторины
func (h *HistoryStorage) FindByQuizID(quizID uint) (*entity.HistoryRecord, error) {
	return h.s.FindHistoryByQuizID(quizID)
}

// DeleteByQuizID удаляет все записи для викторины
func (h *HistoryStorage) DeleteByQuizID(quizID uint) error {
	return h.s.DeleteHistoryByQuizID(quizID)
}
