package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/ledger/internal/pkg/constants"
)

// SessionRepo implements ledger.SessionRepo on Redis. Reads and writes
// slide the key TTL forward.
type SessionRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository creates a Redis-backed session store
func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepo {
	return &SessionRepo{client: client, ttl: ttl}
}

func refreshIntervalKey(sessionID string) string {
	return fmt.Sprintf(constants.KeySessionRefreshInterval, sessionID)
}

func (s *SessionRepo) GetRefreshInterval(ctx context.Context, sessionID string) (int, bool, error) {
	val, err := s.client.Get(ctx, refreshIntervalKey(sessionID)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read refresh interval: %w", err)
	}
	if s.ttl > 0 {
		if err := s.client.Expire(ctx, refreshIntervalKey(sessionID), s.ttl).Err(); err != nil {
			return val, true, fmt.Errorf("failed to extend session: %w", err)
		}
	}
	return val, true, nil
}

func (s *SessionRepo) SetRefreshInterval(ctx context.Context, sessionID string, interval int) error {
	if err := s.client.Set(ctx, refreshIntervalKey(sessionID), strconv.Itoa(interval), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store refresh interval: %w", err)
	}
	return nil
}

// MemorySessionRepo keeps session preferences in process memory
type MemorySessionRepo struct {
	mu     sync.RWMutex
	values map[string]int
}

// NewMemorySessionRepository creates an in-process session store
func NewMemorySessionRepository() *MemorySessionRepo {
	return &MemorySessionRepo{values: make(map[string]int)}
}

func (m *MemorySessionRepo) GetRefreshInterval(ctx context.Context, sessionID string) (int, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[sessionID]
	return v, ok, nil
}

func (m *MemorySessionRepo) SetRefreshInterval(ctx context.Context, sessionID string, interval int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[sessionID] = interval
	return nil
}
