package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "match:session:"

// ErrNoState is returned when nothing was stored for a conversation yet.
var ErrNoState = errors.New("no conversation state")

// State is what a conversation has already established across turns.
type State struct {
	Category string `json:"category,omitempty"`
	Region   string `json:"region,omitempty"`
}

// Store keeps conversation state between chat turns.
type Store interface {
	Load(ctx context.Context, conversationID string) (State, error)
	Save(ctx context.Context, conversationID string, state State) error
}

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisStore persists conversation state as JSON strings with an expiry.
type RedisStore struct {
	client redisClient
	ttl    time.Duration
}

// NewRedisStore wraps a go-redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Connect parses a redis:// URL and verifies the server answers.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, fmt.Errorf("redis url must not be empty")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Load returns the stored state or ErrNoState.
func (s *RedisStore) Load(ctx context.Context, conversationID string) (State, error) {
	raw, err := s.client.Get(ctx, key(conversationID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return State{}, ErrNoState
		}
		return State{}, fmt.Errorf("load conversation state: %w", err)
	}

	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return State{}, fmt.Errorf("decode conversation state: %w", err)
	}
	return state, nil
}

// Save overwrites the state and refreshes its expiry.
func (s *RedisStore) Save(ctx context.Context, conversationID string, state State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode conversation state: %w", err)
	}
	if err := s.client.Set(ctx, key(conversationID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save conversation state: %w", err)
	}
	return nil
}

func key(conversationID string) string {
	return keyPrefix + conversationID
}

var _ Store = (*RedisStore)(nil)
