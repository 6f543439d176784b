package repository

import (
	"github.com/yourusername/quizify-api/internal/domain/entity"
)

// HistoryRepository определяет методы для журнала пройденных викторин.
// Журнал append-mostly: записи добавляются и удаляются, но не изменяются.
type HistoryRepository interface {
	// Create добавляет новую запись истории
	Create(record *entity.HistoryRecord) error
	// List возвращает все записи, новые первыми
	List() ([]entity.HistoryRecord, error)
	// FindByQuizID возвращает первую (самую свежую) запись для викторины
	FindByQuizID(quizID uint) (*entity.HistoryRecord, error)
	// DeleteByQuizID удаляет ВСЕ записи с данным quizID. Обычно запись одна,
	// но уникальность не предполагается.
	DeleteByQuizID(quizID uint) error
}
