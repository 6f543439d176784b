package dto

import (
	"time"

	"github.com/yourusername/quizify-api/internal/domain/entity"
)

// HistoryRecordResponse представляет запись истории в формате для ответа
// клиенту. Quiz и Result — полные снимки на момент прохождения.
type HistoryRecordResponse struct {
	ID     uint            `json:"id"`
	Quiz   *QuizResponse   `json:"quiz"`
	Result *ResultResponse `json:"result"`
	Date   time.Time       `json:"date"`
}

// NewHistoryRecordResponse создает DTO для записи истории
func NewHistoryRecordResponse(record *entity.HistoryRecord) *HistoryRecordResponse {
	if record == nil {
		return nil
	}
	quiz := entity.Quiz(record.Quiz)
	result := entity.QuizResult(record.Result)
	return &HistoryRecordResponse{
		ID:     record.ID,
		Quiz:   NewQuizResponse(&quiz, true),
		Result: NewResultResponse(&result),
		Date:   record.Date,
	}
}

// NewListHistoryResponse создает слайс DTO для списка записей истории
func NewListHistoryResponse(records []entity.HistoryRecord) []*HistoryRecordResponse {
	list := make([]*HistoryRecordResponse, len(records))
	for i := range records {
		list[i] = NewHistoryRecordResponse(&records[i])
	}
	return list
}
