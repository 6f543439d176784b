package entity

import "time"

// Состояния черновика викторины
const (
	DraftStateTopicStaged    = "topic_staged"
	DraftStateDocumentStaged = "document_staged"
	DraftStateConfigured     = "configured"
)

// Источники черновика. Явный тег вместо неявных проверок наличия полей.
const (
	DraftSourceTopic    = "topic"
	DraftSourceDocument = "document"
)

// Значения по умолчанию, применяемые на шаге настройки
const (
	DefaultQuestionCount = 10
	DefaultDifficulty    = DifficultyMedium
)

// QuizDraft представляет незавершённую спецификацию викторины между шагами
// создания. Живёт ровно один черновик на сессию; старт нового создания
// перезаписывает текущий. Сырые байты документа хранятся отдельным ключом
// (side-channel), а не внутри самой записи черновика.
type QuizDraft struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	State         string      `json:"state"`
	Source        string      `json:"source"`
	Topic         string      `json:"topic"`
	DocumentName  string      `json:"documentName,omitempty"`
	QuestionCount int         `json:"questionCount"`
	Difficulty    string      `json:"difficulty"`
	QuestionTypes StringArray `json:"questionTypes"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// IsDocumentSourced проверяет, создан ли черновик из загруженного документа
func (d *QuizDraft) IsDocumentSourced() bool {
	return d.Source == DraftSourceDocument
}

// IsConfigured проверяет, пройден ли шаг настройки параметров
func (d *QuizDraft) IsConfigured() bool {
	return d.State == DraftStateConfigured
}
