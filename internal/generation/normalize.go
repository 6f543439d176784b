package generation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/yourusername/quizify-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizify-api/internal/pkg/errors"
)

// NormalizedQuestion - канонический вопрос после нормализации, ещё не
// привязанный к хранилищу. ID здесь — UUID нормализатора; целочисленный
// идентификатор назначит слой хранения при записи.
type NormalizedQuestion struct {
	ID            string
	QuestionText  string
	Options       []entity.QuizOption
	CorrectAnswer string
	Explanation   string
	Type          string
}

// Normalize превращает сырые записи генератора в канонические вопросы:
//   - каждому вопросу и каждому варианту без ID назначается свежий UUID;
//   - порядок вопросов и вариантов сохраняется как во входе;
//   - correctAnswer, explanation и type передаются verbatim;
//   - соответствие correctAnswer одному из вариантов здесь НЕ проверяется —
//     это забота этапа показа/оценивания, upstream может легитимно
//     использовать иную формулировку.
//
// Запись без questionText или type роняет всю нормализацию с ErrGeneration:
// неполные записи не отбрасываются молча и частичная викторина не возвращается.
func Normalize(raw *RawQuiz) ([]NormalizedQuestion, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: nil generation output", apperrors.ErrGeneration)
	}

	normalized := make([]NormalizedQuestion, 0, len(raw.Questions))
	for i, q := range raw.Questions {
		if q.QuestionText == "" {
			return nil, fmt.Errorf("%w: question %d is missing questionText", apperrors.ErrGeneration, i)
		}
		if q.Type == "" {
			return nil, fmt.Errorf("%w: question %d is missing type", apperrors.ErrGeneration, i)
		}

		options := make([]entity.QuizOption, len(q.Options))
		for j, opt := range q.Options {
			id := opt.ID
			if id == "" {
				id = uuid.NewString()
			}
			options[j] = entity.QuizOption{ID: id, Text: opt.Text}
		}

		normalized = append(normalized, NormalizedQuestion{
			ID:            uuid.NewString(),
			QuestionText:  q.QuestionText,
			Options:       options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Type:          q.Type,
		})
	}
	return normalized, nil
}

// ToEntities преобразует нормализованные вопросы в сущности для записи в
// хранилище. Целочисленные ID назначит репозиторий.
func ToEntities(questions []NormalizedQuestion) []entity.Question {
	entities := make([]entity.Question, len(questions))
	for i, q := range questions {
		entities[i] = entity.Question{
			QuestionText:  q.QuestionText,
			Options:       entity.OptionList(q.Options),
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Type:          q.Type,
		}
	}
	return entities
}
