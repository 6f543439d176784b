package repository

import (
	"github.com/yourusername/quizify-api/internal/domain/entity"
)

// QuizRepository определяет методы для работы с викторинами.
// Викторины неизменяемы после создания: операций Update/Delete нет.
type QuizRepository interface {
	// Create сохраняет викторину и назначает ей следующий свободный ID
	Create(quiz *entity.Quiz) error
	// CreateWithQuestions атомарно сохраняет викторину вместе со всеми её
	// вопросами. Либо фиксируется всё, либо ничего — частичные списки
	// вопросов никогда не сохраняются.
	CreateWithQuestions(quiz *entity.Quiz, questions []entity.Question) error
	GetByID(id uint) (*entity.Quiz, error)
	GetWithQuestions(id uint) (*entity.Quiz, error)
}

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	// Create сохраняет вопрос и назначает ему следующий свободный ID
	Create(question *entity.Question) error
	CreateBatch(questions []entity.Question) error
	// GetByQuizID возвращает вопросы викторины в порядке создания
	GetByQuizID(quizID uint) ([]entity.Question, error)
}
