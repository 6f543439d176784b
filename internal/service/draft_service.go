package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/quizify-api/internal/domain/entity"
	"github.com/yourusername/quizify-api/internal/domain/repository"
	apperrors "github.com/yourusername/quizify-api/internal/pkg/errors"
)

// generationLockTTL страхует in-flight флаг от вечного зависания,
// если процесс упал посреди генерации
const generationLockTTL = 3 * time.Minute

// DraftService владеет единственным живым черновиком сессии и проводит его
// по шагам создания: Empty -> TopicStaged|DocumentStaged -> Configured ->
// Submitted (терминальное, черновик очищен). Старт нового создания в любом
// состоянии перезаписывает черновик — истории черновиков нет.
type DraftService struct {
	staging     repository.StagingRepository
	quizService *QuizService
}

// NewDraftService создает новый сервис черновиков
func NewDraftService(staging repository.StagingRepository, quizService *QuizService) *DraftService {
	return &DraftService{staging: staging, quizService: quizService}
}

// StartTopicDraft начинает создание по теме: Empty -> TopicStaged
func (s *DraftService) StartTopicDraft(sessionKey, topic string) (*entity.QuizDraft, error) {
	if len(topic) < MinTopicLength {
		return nil, apperrors.NewValidationError(map[string]string{
			"topic": fmt.Sprintf("topic must be at least %d characters", MinTopicLength),
		})
	}

	draft := &entity.QuizDraft{
		ID:        uuid.NewString(),
		Title:     topic,
		State:     entity.DraftStateTopicStaged,
		Source:    entity.DraftSourceTopic,
		Topic:     topic,
		CreatedAt: time.Now(),
	}

	// Перезапись черновика отменяет и прежний документ, если он был
	if err := s.staging.DeleteDocument(sessionKey); err != nil {
		return nil, err
	}
	if err := s.staging.SaveDraft(sessionKey, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// StartDocumentDraft начинает создание по документу: Empty -> DocumentStaged.
// Сырые байты уходят в side-channel, в записи черновика остаётся только
// ссылка в виде имени файла.
func (s *DraftService) StartDocumentDraft(sessionKey, filename string, data []byte) (*entity.QuizDraft, error) {
	if len(data) == 0 {
		return nil, apperrors.NewValidationError(map[string]string{
			"file": "no file uploaded",
		})
	}

	topic := DeriveTopicFromFilename(filename)
	draft := &entity.QuizDraft{
		ID:           uuid.NewString(),
		Title:        topic,
		State:        entity.DraftStateDocumentStaged,
		Source:       entity.DraftSourceDocument,
		Topic:        topic,
		DocumentName: filename,
		CreatedAt:    time.Now(),
	}

	if err := s.staging.SaveDocument(sessionKey, data); err != nil {
		return nil, err
	}
	if err := s.staging.SaveDraft(sessionKey, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Configure выполняет шаг настройки: *Staged -> Configured.
// Незаданные параметры получают значения по умолчанию: count=10,
// difficulty=medium, types=[multipleChoice].
func (s *DraftService) Configure(sessionKey string, params GenerationParams) (*entity.QuizDraft, error) {
	draft, err := s.staging.GetDraft(sessionKey)
	if err != nil {
		return nil, err
	}

	if params.QuestionCount == 0 {
		params.QuestionCount = entity.DefaultQuestionCount
	}
	if params.Difficulty == "" {
		params.Difficulty = entity.DefaultDifficulty
	}
	if len(params.QuestionTypes) == 0 {
		params.QuestionTypes = []string{entity.QuestionTypeMultipleChoice}
	}

	if err := validateGenerationParams(params); err != nil {
		return nil, err
	}

	draft.State = entity.DraftStateConfigured
	draft.QuestionCount = params.QuestionCount
	draft.Difficulty = params.Difficulty
	draft.QuestionTypes = entity.StringArray(params.QuestionTypes)

	if err := s.staging.SaveDraft(sessionKey, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Get возвращает текущий черновик сессии
func (s *DraftService) Get(sessionKey string) (*entity.QuizDraft, error) {
	return s.staging.GetDraft(sessionKey)
}

// Abandon явно отбрасывает черновик вместе с документом
func (s *DraftService) Abandon(sessionKey string) error {
	if err := s.staging.DeleteDocument(sessionKey); err != nil {
		return err
	}
	return s.staging.DeleteDraft(sessionKey)
}

// GenerateFromDraft потребляет настроенный черновик: Configured -> Submitted.
// На сессию допускается не более одной генерации одновременно — повторная
// отправка, пока запрос в полёте, получает ErrConflict. При любом сбое
// черновик остаётся нетронутым, чтобы пользователь мог повторить без
// повторного ввода параметров; очистка происходит только при успехе.
func (s *DraftService) GenerateFromDraft(ctx context.Context, sessionKey string) (*entity.Quiz, error) {
	draft, err := s.staging.GetDraft(sessionKey)
	if err != nil {
		return nil, err
	}
	if !draft.IsConfigured() {
		return nil, fmt.Errorf("%w: draft is not configured yet", apperrors.ErrConflict)
	}

	acquired, err := s.staging.AcquireGenerationLock(sessionKey, generationLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, fmt.Errorf("%w: generation already in progress for this draft", apperrors.ErrConflict)
	}
	defer func() {
		if err := s.staging.ReleaseGenerationLock(sessionKey); err != nil {
			log.Printf("[DraftService] Failed to release generation lock for %s: %v", sessionKey, err)
		}
	}()

	params := GenerationParams{
		QuestionCount: draft.QuestionCount,
		QuestionTypes: draft.QuestionTypes,
		Difficulty:    draft.Difficulty,
	}

	var quiz *entity.Quiz
	if draft.IsDocumentSourced() {
		data, err := s.staging.GetDocument(sessionKey)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				// Side-channel потерян (например, вытеснение по TTL) —
				// для этого черновика это фатально
				return nil, fmt.Errorf("%w: file not found, please re-upload", apperrors.ErrExtraction)
			}
			return nil, err
		}
		quiz, err = s.quizService.GenerateFromDocument(ctx, draft.DocumentName, data, params)
		if err != nil {
			return nil, err
		}
	} else {
		quiz, err = s.quizService.GenerateFromTopic(ctx, draft.Topic, params)
		if err != nil {
			return nil, err
		}
	}

	// Submitted: черновик и side-channel очищаются
	if err := s.staging.DeleteDocument(sessionKey); err != nil {
		log.Printf("[DraftService] Failed to clear staged document for %s: %v", sessionKey, err)
	}
	if err := s.staging.DeleteDraft(sessionKey); err != nil {
		log.Printf("[DraftService] Failed to clear draft for %s: %v", sessionKey, err)
	}
	return quiz, nil
}
