package redis

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/yourusername/quizify-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizify-api/internal/pkg/errors"
)

// Ключи строятся от сессионного ключа клиента. Черновик и документ живут
// под разными ключами: бинарный payload не смешивается с JSON-состоянием.
const (
	draftKeyPrefix    = "quizify:draft:"
	documentKeyPrefix = "quizify:document:"
	genLockKeyPrefix  = "quizify:genlock:"
)

// StagingRepo реализует repository.StagingRepository поверх Redis
type StagingRepo struct {
	client      redis.UniversalClient
	ctx         context.Context
	draftTTL    time.Duration
	documentTTL time.Duration
}

// NewStagingRepo создает новый репозиторий временного хранения черновиков
func NewStagingRepo(client redis.UniversalClient, draftTTL, documentTTL time.Duration) (*StagingRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil for StagingRepo")
	}
	if draftTTL <= 0 {
		draftTTL = 24 * time.Hour
	}
	if documentTTL <= 0 {
		documentTTL = 24 * time.Hour
	}
	return &StagingRepo{
		client:      client,
		ctx:         context.Background(),
		draftTTL:    draftTTL,
		documentTTL: documentTTL,
	}, nil
}

// SaveDraft сохраняет черновик сессии (перезаписывая существующий)
func (r *StagingRepo) SaveDraft(sessionKey string, draft *entity.QuizDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return r.client.Set(r.ctx, draftKeyPrefix+sessionKey, data, r.draftTTL).Err()
}

// GetDraft возвращает черновик сессии
func (r *StagingRepo) GetDraft(sessionKey string) (*entity.QuizDraft, error) {
	data, err := r.client.Get(r.ctx, draftKeyPrefix+sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	var draft entity.QuizDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// DeleteDraft удаляет черновик сессии
func (r *StagingRepo) DeleteDraft(sessionKey string) error {
	return r.client.Del(r.ctx, draftKeyPrefix+sessionKey).Err()
}

// SaveDocument сохраняет байты документа в side-channel (base64)
func (r *StagingRepo) SaveDocument(sessionKey string, data []byte) error {
	encoded := base64.StdEncoding.EncodeToString(data)
	return r.client.Set(r.ctx, documentKeyPrefix+sessionKey, encoded, r.documentTTL).Err()
}

// GetDocument возвращает байты документа. ErrNotFound означает, что
// side-channel потерян (вытеснение по TTL) — для черновика это фатально.
func (r *StagingRepo) GetDocument(sessionKey string) ([]byte, error) {
	encoded, err := r.client.Get(r.ctx, documentKeyPrefix+sessionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return base64.StdEncoding.DecodeString(encoded)
}

// DeleteDocument удаляет документ из side-channel
func (r *StagingRepo) DeleteDocument(sessionKey string) error {
	return r.client.Del(r.ctx, documentKeyPrefix+sessionKey).Err()
}

// AcquireGenerationLock захватывает флаг генерации через SETNX.
// Возвращает false, если для этой сессии генерация уже выполняется.
func (r *StagingRepo) AcquireGenerationLock(sessionKey string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(r.ctx, genLockKeyPrefix+sessionKey, "1", ttl).Result()
}

// ReleaseGenerationLock снимает флаг генерации
func (r *StagingRepo) ReleaseGenerationLock(sessionKey string) error {
	return r.client.Del(r.ctx, genLockKeyPrefix+sessionKey).Err()
}
