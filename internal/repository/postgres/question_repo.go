package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/quizify-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizify-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(question *entity.Question) error {
	if err := r.db.Create(question).Error; err != nil {
		return fmt.Errorf("%w: create question: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

// CreateBatch создает несколько вопросов одной вставкой
func (r *QuestionRepo) CreateBatch(questions []entity.Question) error {
	if len(questions) == 0 {
		return nil
	}
	if err := r.db.Create(&questions).Error; err != nil {
		return fmt.Errorf("%w: create questions: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

// GetByQuizID возвращает все вопросы викторины в порядке создания
func (r *QuestionRepo) GetByQuizID(quizID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("quiz_id = ?", quizID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
