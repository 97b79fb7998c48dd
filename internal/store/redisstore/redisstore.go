package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	promptKey        = "global:system_prompt"
)

// Store implements store.Store on a single Redis instance.
type Store struct {
	client *redis.Client
}

func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// Ping verifies connectivity, used at startup.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) LoadSession(ctx context.Context, id string) ([]byte, error) {
	val, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (s *Store) SaveSession(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKeyPrefix+id, data, ttl).Err()
}

func (s *Store) LoadPrompt(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, promptKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *Store) SavePrompt(ctx context.Context, text string) error {
	return s.client.Set(ctx, promptKey, text, 0).Err()
}

func (s *Store) SeedPrompt(ctx context.Context, text string) (bool, error) {
	return s.client.SetNX(ctx, promptKey, text, 0).Result()
}

func (s *Store) Close() error {
	return s.client.Close()
}
