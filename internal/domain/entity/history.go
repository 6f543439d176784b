package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// QuizSnapshot - полная копия викторины внутри записи истории (JSONB).
// Снимок, а не ссылка: удаление живой викторины не портит историю.
type QuizSnapshot Quiz

// Scan реализует интерфейс sql.Scanner для QuizSnapshot
func (s *QuizSnapshot) Scan(value interface{}) error {
	if value == nil {
		*s = QuizSnapshot{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}
	return json.Unmarshal(bytes, s)
}

// Value реализует интерфейс driver.Valuer для QuizSnapshot
func (s QuizSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// ResultSnapshot - копия результата прохождения внутри записи истории (JSONB)
type ResultSnapshot QuizResult

// Scan реализует интерфейс sql.Scanner для ResultSnapshot
func (s *ResultSnapshot) Scan(value interface{}) error {
	if value == nil {
		*s = ResultSnapshot{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}
	return json.Unmarshal(bytes, s)
}

// Value реализует интерфейс driver.Valuer для ResultSnapshot
func (s ResultSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// HistoryRecord представляет одну завершённую попытку прохождения викторины.
// Записи добавляются в начало (новые — первыми при чтении) и никогда не
// изменяются на месте.
type HistoryRecord struct {
	ID     uint           `gorm:"primaryKey" json:"-"`
	QuizID uint           `gorm:"not null;index" json:"-"`
	Quiz   QuizSnapshot   `gorm:"type:jsonb;not null" json:"quiz"`
	Result ResultSnapshot `gorm:"type:jsonb;not null" json:"result"`
	Date   time.Time      `gorm:"not null;index" json:"date"`
}

// TableName определяет имя таблицы для GORM
func (HistoryRecord) TableName() string {
	return "history_records"
}
