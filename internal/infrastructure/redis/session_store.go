package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/ports"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
)

var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore guarda cada sesión como JSON con TTL hasta su ExpiresAt.
type SessionStore struct {
	rdb *goredis.Client
	now func() time.Time
}

func NewSessionStore(rdb *goredis.Client) *SessionStore {
	return &SessionStore{rdb: rdb, now: time.Now}
}

func (s *SessionStore) Create(ctx context.Context, sess *entity.Session) error {
	if sess == nil || sess.ID == "" {
		return domain.ErrInvalidInput
	}
	ttl := time.Duration(0)
	if !sess.ExpiresAt.IsZero() {
		ttl = sess.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return domain.ErrSessionNotFound
		}
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("redis: serializar sesión: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionPrefix+sess.ID, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis: guardar sesión: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (*entity.Session, error) {
	raw, err := s.rdb.Get(ctx, sessionPrefix+sessionID).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis: leer sesión: %w", err)
	}
	var sess entity.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("redis: sesión corrupta: %w", err)
	}
	if sess.Expired(s.now()) {
		return nil, domain.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, sessionPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("redis: borrar sesión: %w", err)
	}
	return nil
}
