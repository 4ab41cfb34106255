package attendee

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"bookease/models"
)

// StoreKey names the single registry record in the backing key-value
// store: one flat JSON array of attendees, versionless.
const StoreKey = "attendees-store"

// Store persists the attendee list. The registry always reads and writes
// the whole list; last writer wins.
type Store interface {
	Load(ctx context.Context) ([]models.Attendee, error)
	Save(ctx context.Context, attendees []models.Attendee) error
}

// RedisStore keeps the registry in Redis so it survives restarts.
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) Load(ctx context.Context) ([]models.Attendee, error) {
	data, err := s.Client.Get(ctx, StoreKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load attendee store: %w", err)
	}
	var attendees []models.Attendee
	if err := json.Unmarshal([]byte(data), &attendees); err != nil {
		return nil, fmt.Errorf("failed to parse attendee store: %w", err)
	}
	return attendees, nil
}

func (s *RedisStore) Save(ctx context.Context, attendees []models.Attendee) error {
	data, err := json.Marshal(attendees)
	if err != nil {
		return fmt.Errorf("failed to marshal attendee store: %w", err)
	}
	if err := s.Client.Set(ctx, StoreKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save attendee store: %w", err)
	}
	return nil
}

// MemoryStore is a volatile Store used in tests and as a fallback when no
// Redis is configured.
type MemoryStore struct {
	attendees []models.Attendee
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load(context.Context) ([]models.Attendee, error) {
	out := make([]models.Attendee, len(s.attendees))
	copy(out, s.attendees)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, attendees []models.Attendee) error {
	s.attendees = make([]models.Attendee, len(attendees))
	copy(s.attendees, attendees)
	return nil
}
