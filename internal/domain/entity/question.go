package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// QuizOption представляет вариант ответа на вопрос.
// ID уникален в пределах вопроса (UUID, назначается нормализатором).
type QuizOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// OptionList - пользовательский тип для хранения вариантов ответа в JSONB
type OptionList []QuizOption

// Scan реализует интерфейс sql.Scanner для OptionList
func (o *OptionList) Scan(value interface{}) error {
	if value == nil {
		*o = OptionList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*o = OptionList{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value реализует интерфейс driver.Valuer для OptionList
func (o OptionList) Value() (driver.Value, error) {
	if len(o) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(o)
}

// Question представляет вопрос викторины. Порядок вариантов ответа значим
// и сохраняется таким, каким его вернул генератор. Для shortAnswer список
// вариантов пуст.
type Question struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	QuizID        uint       `gorm:"not null;index" json:"quizId"`
	QuestionText  string     `gorm:"type:text;not null" json:"questionText"`
	Options       OptionList `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer string     `gorm:"type:text;not null" json:"correctAnswer"`
	Explanation   string     `gorm:"type:text;not null;default:''" json:"explanation"`
	Type          string     `gorm:"size:20;not null" json:"type"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsCorrect проверяет ответ пользователя строгим строковым сравнением.
// Политика едина для всех трёх типов вопросов: с учётом регистра, без трима.
func (q *Question) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}

// HasOption возвращает true, если текст одного из вариантов совпадает с correctAnswer.
// Нормализатор это НЕ проверяет; проверка полезна на этапе показа/отладки.
func (q *Question) HasOption(text string) bool {
	for _, opt := range q.Options {
		if opt.Text == text {
			return true
		}
	}
	return false
}
