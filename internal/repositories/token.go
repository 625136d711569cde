package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/avazquez/tienda-api/internal/logger"
)

// TokenRepository stores session tokens in Redis. Each live session keeps
// two keys so both directions resolve in one lookup:
//
//	auth:token:<token> -> username
//	auth:user:<username> -> token
//
// Tokens have no TTL; they live until logout deletes them.
type TokenRepository struct {
	client *redis.Client
}

func NewTokenRepository(client *redis.Client) *TokenRepository {
	return &TokenRepository{client: client}
}

func tokenKey(token string) string   { return fmt.Sprintf("auth:token:%s", token) }
func userKey(username string) string { return fmt.Sprintf("auth:user:%s", username) }

// GetByUsername returns the live token for the user, or "" when none exists.
func (r *TokenRepository) GetByUsername(ctx context.Context, username string) (string, error) {
	token, err := r.client.Get(ctx, userKey(username)).Result()

	logger.Log.Infow("token lookup by user",
		"key", userKey(username),
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// GetUsername returns the user a token belongs to, or "" when the token
// is not live.
func (r *TokenRepository) GetUsername(ctx context.Context, token string) (string, error) {
	username, err := r.client.Get(ctx, tokenKey(token)).Result()

	logger.Log.Infow("token lookup",
		"key", tokenKey(token),
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return username, nil
}

// Save associates a token with a user in both directions.
func (r *TokenRepository) Save(ctx context.Context, username, token string) error {
	if err := r.client.Set(ctx, tokenKey(token), username, 0).Err(); err != nil {
		logger.Log.Errorw("failed to store token", "key", tokenKey(token), "error", err)
		return err
	}
	err := r.client.Set(ctx, userKey(username), token, 0).Err()

	logger.Log.Infow("token saved",
		"user", username,
		"error", err,
	)

	return err
}

// Delete removes the token and its user association.
func (r *TokenRepository) Delete(ctx context.Context, token string) error {
	username, err := r.client.Get(ctx, tokenKey(token)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	keys := []string{tokenKey(token)}
	if username != "" {
		keys = append(keys, userKey(username))
	}
	err = r.client.Del(ctx, keys...).Err()

	logger.Log.Infow("token deleted",
		"user", username,
		"error", err,
	)

	return err
}
