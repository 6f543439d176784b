package dto

import (
	"time"

	"github.com/yourusername/quizify-api/internal/domain/entity"
)

// DraftResponse представляет черновик викторины в формате для ответа клиенту.
// Сырые байты документа клиенту не возвращаются — только имя файла.
type DraftResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	State         string    `json:"state"`
	Source        string    `json:"source"`
	Topic         string    `json:"topic,omitempty"`
	DocumentName  string    `json:"documentName,omitempty"`
	QuestionCount int       `json:"questionCount,omitempty"`
	Difficulty    string    `json:"difficulty,omitempty"`
	QuestionTypes []string  `json:"questionTypes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewDraftResponse создает DTO для черновика
func NewDraftResponse(draft *entity.QuizDraft) *DraftResponse {
	if draft == nil {
		return nil
	}
	return &DraftResponse{
		ID:            draft.ID,
		Title:         draft.Title,
		State:         draft.State,
		Source:        draft.Source,
		Topic:         draft.Topic,
		DocumentName:  draft.DocumentName,
		QuestionCount: draft.QuestionCount,
		Difficulty:    draft.Difficulty,
		QuestionTypes: draft.QuestionTypes,
		CreatedAt:     draft.CreatedAt,
	}
}
