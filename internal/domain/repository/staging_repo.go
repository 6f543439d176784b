package repository

import (
	"time"

	"github.com/yourusername/quizify-api/internal/domain/entity"
)

// StagingRepository определяет временное хранилище черновика и загруженного
// документа между шагами создания викторины. Черновик и документ живут под
// разными ключами: бинарный payload не должен ездить через тот же носитель,
// что и маленькое JSON-состояние.
type StagingRepository interface {
	// SaveDraft сохраняет (или перезаписывает) единственный черновик сессии
	SaveDraft(sessionKey string, draft *entity.QuizDraft) error
	// GetDraft возвращает черновик сессии или apperrors.ErrNotFound
	GetDraft(sessionKey string) (*entity.QuizDraft, error)
	DeleteDraft(sessionKey string) error

	// SaveDocument сохраняет сырые байты документа в side-channel
	SaveDocument(sessionKey string, data []byte) error
	// GetDocument возвращает байты документа или apperrors.ErrNotFound
	// (например, после вытеснения по TTL)
	GetDocument(sessionKey string) ([]byte, error)
	DeleteDocument(sessionKey string) error

	// AcquireGenerationLock захватывает флаг "генерация выполняется" для сессии.
	// Возвращает false, если генерация уже в полёте (at-most-one-in-flight).
	AcquireGenerationLock(sessionKey string, ttl time.Duration) (bool, error)
	ReleaseGenerationLock(sessionKey string) error
}
