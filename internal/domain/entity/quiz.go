package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Уровни сложности викторины
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Типы вопросов. Значения приходят и уходят по проводу как есть (camelCase).
const (
	QuestionTypeMultipleChoice = "multipleChoice"
	QuestionTypeTrueFalse      = "trueFalse"
	QuestionTypeShortAnswer    = "shortAnswer"
)

// IsValidDifficulty проверяет, что уровень сложности один из поддерживаемых
func IsValidDifficulty(difficulty string) bool {
	switch difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// IsValidQuestionType проверяет, что тип вопроса один из поддерживаемых
func IsValidQuestionType(questionType string) bool {
	switch questionType {
	case QuestionTypeMultipleChoice, QuestionTypeTrueFalse, QuestionTypeShortAnswer:
		return true
	}
	return false
}

// StringArray - пользовательский тип для работы с JSONB
type StringArray []string

// Scan реализует интерфейс sql.Scanner для StringArray
// Используется GORM для чтения JSONB данных из базы
func (o *StringArray) Scan(value interface{}) error {
	if value == nil {
		*o = StringArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*o = StringArray{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value реализует интерфейс driver.Valuer для StringArray
// Используется GORM для записи StringArray в JSONB в базе
func (o StringArray) Value() (driver.Value, error) {
	if len(o) == 0 {
		return []byte("[]"), nil // Возвращаем пустой JSON массив вместо null
	}
	return json.Marshal(o)
}

// Quiz представляет сгенерированную викторину. После создания запись неизменяема:
// слой хранения не предоставляет операций обновления или удаления.
type Quiz struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Title         string      `gorm:"size:200;not null" json:"title"`
	Topic         string      `gorm:"size:200;not null" json:"topic"`
	QuestionCount int         `gorm:"not null" json:"questionCount"`
	Difficulty    string      `gorm:"size:20;not null" json:"difficulty"`
	QuestionTypes StringArray `gorm:"type:jsonb;not null" json:"questionTypes"`
	Questions     []Question  `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// TableName определяет имя таблицы для GORM
func (Quiz) TableName() string {
	return "quizzes"
}
