package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/glowstudio/landing-builder/internal/models"
)

const (
	hashDocuments = "builder:documents"
	hashUsers     = "builder:users"
	hashUsersByID = "builder:users_by_id"
)

// RedisBackend stores documents and users as JSON values in redis hashes.
type RedisBackend struct {
	rdb *redis.Client
}

func NewRedisBackend(addr, password string) (*RedisBackend, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return &RedisBackend{rdb: rdb}, nil
}

func (b *RedisBackend) LoadDocument(ctx context.Context, userID string) (*models.LandingPageData, bool, error) {
	raw, err := b.rdb.HGet(ctx, hashDocuments, userID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var doc models.LandingPageData
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, false, fmt.Errorf("decode document for %s: %w", userID, err)
	}
	return &doc, true, nil
}

func (b *RedisBackend) SaveDocument(ctx context.Context, userID string, doc *models.LandingPageData) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document for %s: %w", userID, err)
	}
	return b.rdb.HSet(ctx, hashDocuments, userID, raw).Err()
}

func (b *RedisBackend) LoadUserByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	return b.loadUser(ctx, hashUsers, email)
}

func (b *RedisBackend) LoadUserByID(ctx context.Context, id string) (*models.User, bool, error) {
	return b.loadUser(ctx, hashUsersByID, id)
}

func (b *RedisBackend) loadUser(ctx context.Context, hash, field string) (*models.User, bool, error) {
	raw, err := b.rdb.HGet(ctx, hash, field).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false, fmt.Errorf("decode user %s: %w", field, err)
	}
	return &user, true, nil
}

func (b *RedisBackend) SaveUser(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user %s: %w", user.Email, err)
	}

	pipe := b.rdb.TxPipeline()
	pipe.HSet(ctx, hashUsers, user.Email, raw)
	pipe.HSet(ctx, hashUsersByID, user.ID, raw)
	_, err = pipe.Exec(ctx)
	return err
}
