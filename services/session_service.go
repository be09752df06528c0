package services

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"chatbox/config"
	"chatbox/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const DefaultSessionTTLMinutes = 720

// Session binds a browser's opaque cookie id to an authenticated user.
type Session struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// SessionStore holds the server-side session state referenced by cookies.
type SessionStore interface {
	Create(ctx context.Context, user models.User) (Session, error)
	Get(ctx context.Context, id string) (Session, bool, error)
	Delete(ctx context.Context, id string) error
	// Sweep purges expired entries and returns how many were removed.
	Sweep(ctx context.Context) int
}

// SessionTTL reads SESSION_TTL_MINUTES, defaulting to 12 hours.
func SessionTTL() time.Duration {
	minutes, err := strconv.Atoi(config.GetEnv("SESSION_TTL_MINUTES"))
	if err != nil || minutes <= 0 {
		minutes = DefaultSessionTTLMinutes
	}
	return time.Duration(minutes) * time.Minute
}

func newSession(user models.User, ttl time.Duration) Session {
	now := time.Now()
	return Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// MemorySessionStore keeps sessions in-process. State is lost on restart.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
	}
}

func (s *MemorySessionStore) Create(_ context.Context, user models.User) (Session, error) {
	sess := newSession(user, s.ttl)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess, nil
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (Session, bool, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || sess.Expired() {
		return Session{}, false, nil
	}
	return sess, true, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) Sweep(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.Expired() {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RedisSessionStore keeps sessions in Redis so they survive restarts and
// can be shared across instances. Keys carry the TTL; Redis expires them.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(id string) string {
	return "session:" + id
}

func (s *RedisSessionStore) Create(ctx context.Context, user models.User) (Session, error) {
	sess := newSession(user, s.ttl)

	data, err := json.Marshal(sess)
	if err != nil {
		return Session{}, err
	}

	if err := s.client.Set(ctx, sessionKey(sess.ID), data, s.ttl).Err(); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (Session, bool, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return Session{}, false, err
	}
	if sess.Expired() {
		return Session{}, false, nil
	}
	return sess, true, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

func (s *RedisSessionStore) Sweep(_ context.Context) int {
	// Redis expires session keys on its own.
	return 0
}
