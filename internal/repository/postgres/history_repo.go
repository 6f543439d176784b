package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/quizify-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizify-api/internal/pkg/errors"
)

// HistoryRepo реализует repository.HistoryRepository
type HistoryRepo struct {
	db *gorm.DB
}

// NewHistoryRepo создает новый репозиторий истории
func NewHistoryRepo(db *gorm.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// Create добавляет новую запись истории
func (r *HistoryRepo) Create(record *entity.HistoryRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("%w: create history record: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

// List возвращает все записи истории, новые первыми
func (r *HistoryRepo) List() ([]entity.HistoryRecord, error) {
	var records []entity.HistoryRecord
	err := r.db.Order("id DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FindByQuizID возвращает самую свежую запись для викторины
func (r *HistoryRepo) FindByQuizID(quizID uint) (*entity.HistoryRecord, error) {
	var record entity.HistoryRecord
	err := r.db.Where("quiz_id = ?", quizID).Order("id DESC").First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// DeleteByQuizID удаляет все записи истории для викторины
func (r *HistoryRepo) DeleteByQuizID(quizID uint) error {
	return r.db.Where("quiz_id = ?", quizID).Delete(&entity.HistoryRecord{}).Error
}
