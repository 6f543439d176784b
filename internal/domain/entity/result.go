package entity

// IncorrectAnswer описывает один неверно отвеченный вопрос для экрана разбора
type IncorrectAnswer struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}

// QuizResult представляет итог прохождения викторины.
// Инварианты: CorrectCount + IncorrectCount == TotalQuestions;
// Score == round(100 * CorrectCount / TotalQuestions).
type QuizResult struct {
	QuizID           uint              `json:"quizId"`
	Score            int               `json:"score"`
	TotalQuestions   int               `json:"totalQuestions"`
	CorrectCount     int               `json:"correctCount"`
	IncorrectCount   int               `json:"incorrectCount"`
	IncorrectAnswers []IncorrectAnswer `json:"incorrectAnswers"`
}
