package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	ErrFormNotFound  = errors.New("event form not found")
	ErrFormDismissed = errors.New("event form already dismissed")
)

// FormStore keeps form sessions. Dismiss is the only transition and it is
// one-way.
type FormStore interface {
	Open(ctx context.Context) (*FormSession, error)
	Get(ctx context.Context, id string) (*FormSession, error)
	Dismiss(ctx context.Context, id string) error
}

const formKeyPrefix = "eventform:"

// ===========================
// 🔴 Redis-backed sessions
type RedisFormStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFormStore(client *redis.Client, ttl time.Duration) *RedisFormStore {
	return &RedisFormStore{client: client, ttl: ttl}
}

func (s *RedisFormStore) Open(ctx context.Context) (*FormSession, error) {
	session := &FormSession{
		ID:        uuid.New().String(),
		State:     FormOpen,
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	if err := s.client.Set(ctx, formKeyPrefix+session.ID, raw, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("open form: %w", err)
	}
	return session, nil
}

func (s *RedisFormStore) Get(ctx context.Context, id string) (*FormSession, error) {
	raw, err := s.client.Get(ctx, formKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrFormNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get form %s: %w", id, err)
	}
	var session FormSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode form %s: %w", id, err)
	}
	return &session, nil
}

// Dismiss swaps the stored session for its dismissed copy with SET XX GET, so
// two concurrent submits cannot both see the form open.
func (s *RedisFormStore) Dismiss(ctx context.Context, id string) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if current.State == FormDismissed {
		return ErrFormDismissed
	}

	dismissed := *current
	dismissed.State = FormDismissed
	raw, err := json.Marshal(dismissed)
	if err != nil {
		return err
	}

	prev, err := s.client.SetArgs(ctx, formKeyPrefix+id, raw, redis.SetArgs{
		Mode:    "XX",
		KeepTTL: true,
		Get:     true,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return ErrFormNotFound
	}
	if err != nil {
		return fmt.Errorf("dismiss form %s: %w", id, err)
	}

	var before FormSession
	if err := json.Unmarshal([]byte(prev), &before); err != nil {
		return fmt.Errorf("decode form %s: %w", id, err)
	}
	if before.State == FormDismissed {
		return ErrFormDismissed
	}
	return nil
}

// ===========================
// 🟢 In-memory sessions
type MemoryFormStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]FormSession
	now      func() time.Time
}

func NewMemoryFormStore(ttl time.Duration) *MemoryFormStore {
	return &MemoryFormStore{
		ttl:      ttl,
		sessions: make(map[string]FormSession),
		now:      time.Now,
	}
}

func (s *MemoryFormStore) Open(ctx context.Context) (*FormSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	session := FormSession{
		ID:        uuid.New().String(),
		State:     FormOpen,
		ExpiresAt: s.now().UTC().Add(s.ttl),
	}
	s.sessions[session.ID] = session
	return &session, nil
}

func (s *MemoryFormStore) Get(ctx context.Context, id string) (*FormSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.lookup(id)
	if !ok {
		return nil, ErrFormNotFound
	}
	return &session, nil
}

func (s *MemoryFormStore) Dismiss(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.lookup(id)
	if !ok {
		return ErrFormNotFound
	}
	if session.State == FormDismissed {
		return ErrFormDismissed
	}
	session.State = FormDismissed
	s.sessions[id] = session
	return nil
}

// lookup drops expired sessions. Caller holds mu.
func (s *MemoryFormStore) lookup(id string) (FormSession, bool) {
	session, ok := s.sessions[id]
	if !ok {
		return FormSession{}, false
	}
	if s.ttl > 0 && s.now().After(session.ExpiresAt) {
		delete(s.sessions, id)
		return FormSession{}, false
	}
	return session, true
}

// sweep drops every expired session. Caller holds mu.
func (s *MemoryFormStore) sweep() {
	if s.ttl <= 0 {
		return
	}
	now := s.now()
	for id, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
}
