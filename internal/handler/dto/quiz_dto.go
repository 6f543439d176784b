package dto

import (
	"time"

	"github.com/yourusername/quizify-api/internal/domain/entity"
)

// QuestionResponse представляет вопрос в формате для ответа клиенту.
// Правильный ответ и объяснение отдаются клиенту: экран разбора ошибок
// строится на их основе.
type QuestionResponse struct {
	ID            uint                `json:"id"`
	QuizID        uint                `json:"quizId"`
	QuestionText  string              `json:"questionText"`
	Options       []entity.QuizOption `json:"options"`
	CorrectAnswer string              `json:"correctAnswer"`
	Explanation   string              `json:"explanation,omitempty"`
	Type          string              `json:"type"`
}

// QuizResponse представляет викторину в формате для ответа клиенту
type QuizResponse struct {
	ID            uint               `json:"id"`
	Title         string             `json:"title"`
	Topic         string             `json:"topic"`
	QuestionCount int                `json:"questionCount"`
	Difficulty    string             `json:"difficulty"`
	QuestionTypes []string           `json:"questionTypes"`
	Questions     []QuestionResponse `json:"questions,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// ResultResponse представляет результат прохождения викторины
type ResultResponse struct {
	QuizID           uint                     `json:"quizId"`
	Score            int                      `json:"score"`
	TotalQuestions   int                      `json:"totalQuestions"`
	CorrectCount     int                      `json:"correctCount"`
	IncorrectCount   int                      `json:"incorrectCount"`
	IncorrectAnswers []entity.IncorrectAnswer `json:"incorrectAnswers"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:            q.ID,
		QuizID:        q.QuizID,
		QuestionText:  q.QuestionText,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Type:          q.Type,
	}
}

// NewQuizResponse создает DTO для викторины
func NewQuizResponse(quiz *entity.Quiz, includeQuestions bool) *QuizResponse {
	if quiz == nil {
		return nil
	}

	var questionsDTO []QuestionResponse
	if includeQuestions {
		questionsDTO = make([]QuestionResponse, len(quiz.Questions))
		for i := range quiz.Questions {
			questionsDTO[i] = NewQuestionResponse(&quiz.Questions[i])
		}
	}

	return &QuizResponse{
		ID:            quiz.ID,
		Title:         quiz.Title,
		Topic:         quiz.Topic,
		QuestionCount: quiz.QuestionCount,
		Difficulty:    quiz.Difficulty,
		QuestionTypes: quiz.QuestionTypes,
		Questions:     questionsDTO,
		CreatedAt:     quiz.CreatedAt,
	}
}

// NewResultResponse создает DTO для результата
func NewResultResponse(result *entity.QuizResult) *ResultResponse {
	if result == nil {
		return nil
	}
	return &ResultResponse{
		QuizID:           result.QuizID,
		Score:            result.Score,
		TotalQuestions:   result.TotalQuestions,
		CorrectCount:     result.CorrectCount,
		IncorrectCount:   result.IncorrectCount,
		IncorrectAnswers: result.IncorrectAnswers,
	}
}
