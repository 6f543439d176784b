package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/quizify-api/internal/domain/entity"
	"github.com/yourusername/quizify-api/internal/domain/repository"
	"github.com/yourusername/quizify-api/internal/generation"
	"github.com/yourusername/quizify-api/internal/pdf"
	apperrors "github.com/yourusername/quizify-api/internal/pkg/errors"
)

// QuizService реализует конвейер генерации: валидация параметров, вызов
// внешнего генератора, нормализация ответа и атомарная запись в хранилище.
type QuizService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	provider     generation.Provider
	history      *HistoryService
}

// NewQuizService создает новый сервис викторин
func NewQuizService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	provider generation.Provider,
	history *HistoryService,
) *QuizService {
	return &QuizService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		provider:     provider,
		history:      history,
	}
}

// GenerateFromTopic генерирует викторину по текстовой теме
func (s *QuizService) GenerateFromTopic(ctx context.Context, topic string, params GenerationParams) (*entity.Quiz, error) {
	req := generation.Request{
		SourceText:    topic,
		QuestionCount: params.QuestionCount,
		QuestionTypes: params.QuestionTypes,
		Difficulty:    params.Difficulty,
	}
	if err := validateGenerationRequest(req); err != nil {
		return nil, err
	}
	return s.generate(ctx, topic, req)
}

// GenerateFromDocument генерирует викторину по содержимому PDF-документа.
// Тема выводится из имени файла. Текст короче MinDocumentTextLength
// отклоняется до какого-либо обращения к генератору.
func (s *QuizService) GenerateFromDocument(ctx context.Context, filename string, data []byte, params GenerationParams) (*entity.Quiz, error) {
	text, err := pdf.ExtractText(data)
	if err != nil {
		return nil, err
	}
	log.Printf("[QuizService] Extracted %d characters from %q", len(text), filename)

	req := generation.Request{
		SourceText:    text,
		FromDocument:  true,
		QuestionCount: params.QuestionCount,
		QuestionTypes: params.QuestionTypes,
		Difficulty:    params.Difficulty,
	}
	if err := validateGenerationRequest(req); err != nil {
		return nil, err
	}
	return s.generate(ctx, DeriveTopicFromFilename(filename), req)
}

// generate выполняет общую часть конвейера для обоих источников.
// Запись в хранилище происходит только после полного, нормализованного
// ответа; отмена ctx во время вызова генератора не оставляет частично
// созданной викторины.
func (s *QuizService) generate(ctx context.Context, topic string, req generation.Request) (*entity.Quiz, error) {
	prompt := generation.BuildPrompt(req)

	raw, err := s.provider.GenerateQuiz(ctx, prompt)
	if err != nil {
		return nil, err
	}

	normalized, err := generation.Normalize(raw)
	if err != nil {
		return nil, err
	}

	// Недостача вопросов не дополняется молча — расхождение поднимается наверх
	if len(normalized) != req.QuestionCount {
		return nil, fmt.Errorf("%w: generator returned %d questions, expected %d",
			apperrors.ErrGeneration, len(normalized), req.QuestionCount)
	}

	title := raw.Title
	if title == "" {
		title = "Quiz on " + topic
	}

	quiz := &entity.Quiz{
		Title:         title,
		Topic:         topic,
		QuestionCount: req.QuestionCount,
		Difficulty:    req.Difficulty,
		QuestionTypes: entity.StringArray(req.QuestionTypes),
	}

	if err := s.quizRepo.CreateWithQuestions(quiz, generation.ToEntities(normalized)); err != nil {
		return nil, err
	}
	log.Printf("[QuizService] Created quiz #%d (%d questions, topic %q)", quiz.ID, len(quiz.Questions), topic)
	return quiz, nil
}

// GetQuizWithQuestions возвращает викторину вместе с вопросами
func (s *QuizService) GetQuizWithQuestions(id uint) (*entity.Quiz, error) {
	return s.quizRepo.GetWithQuestions(id)
}

// SubmitAnswers принимает полную карту ответов, оценивает её и записывает
// результат в историю. Карта с неотвеченными вопросами отклоняется ДО
// вызова оценивания.
func (s *QuizService) SubmitAnswers(quizID uint, answers map[uint]string) (*entity.QuizResult, error) {
	quiz, err := s.quizRepo.GetWithQuestions(quizID)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{}
	for i := range quiz.Questions {
		if _, ok := answers[quiz.Questions[i].ID]; !ok {
			fields[fmt.Sprintf("answers.%d", quiz.Questions[i].ID)] = "question is unanswered"
		}
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	result := GradeQuiz(quiz, answers)

	if _, err := s.history.Record(quiz, result); err != nil {
		return nil, err
	}
	return result, nil
}

// DeriveTopicFromFilename выводит тему викторины из имени загруженного файла
func DeriveTopicFromFilename(filename string) string {
	return strings.TrimSuffix(filename, ".pdf")
}
