package service

import (
	"math"

	"github.com/yourusername/quizify-api/internal/domain/entity"
)

// GradeQuiz - чистая функция оценивания. Предполагает ПОЛНУЮ карту ответов:
// проверку полноты выполняет вызывающий код до обращения сюда.
//
// Ответ сравнивается с каноническим строгим строковым равенством (с учётом
// регистра, без трима) — политика одинакова для всех трёх типов вопросов,
// включая свободный текст. Неверные ответы собираются в порядке вопросов
// викторины. Функция детерминирована: одинаковый вход даёт идентичный результат.
func GradeQuiz(quiz *entity.Quiz, answers map[uint]string) *entity.QuizResult {
	correct := 0
	incorrect := make([]entity.IncorrectAnswer, 0)

	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		answer := answers[q.ID]
		if q.IsCorrect(answer) {
			correct++
			continue
		}
		incorrect = append(incorrect, entity.IncorrectAnswer{
			Question:      q.QuestionText,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	total := len(quiz.Questions)
	score := 0
	if total > 0 {
		// Стандартное округление: 0.5 округляется вверх
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}

	return &entity.QuizResult{
		QuizID:           quiz.ID,
		Score:            score,
		TotalQuestions:   total,
		CorrectCount:     correct,
		IncorrectCount:   total - correct,
		IncorrectAnswers: incorrect,
	}
}
