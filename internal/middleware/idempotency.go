package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const (
	// IdempotencyHeader is the standard HTTP header for idempotency keys
	IdempotencyHeader = "Idempotency-Key"

	// IdempotencyCacheTTL defines how long responses are cached
	IdempotencyCacheTTL = 24 * time.Hour

	// IdempotencyLockTimeout prevents indefinite locks if a request crashes
	IdempotencyLockTimeout = 10 * time.Second

	idempotencyKeyPrefix  = "idempotency:"
	idempotencyLockPrefix = "idempotency-lock:"
)

// ErrIdempotencyMiss is returned by an IdempotencyStore when no response is cached.
var ErrIdempotencyMiss = errors.New("idempotency key not found")

// IdempotencyStore is the storage the idempotency middleware needs.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (string, error)
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type redisIdempotencyStore struct {
	rdb *redis.Client
}

// NewRedisIdempotencyStore adapts a go-redis client to IdempotencyStore.
func NewRedisIdempotencyStore(rdb *redis.Client) IdempotencyStore {
	return &redisIdempotencyStore{rdb: rdb}
}

func (s *redisIdempotencyStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrIdempotencyMiss
	}
	return v, err
}

func (s *redisIdempotencyStore) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return s.rdb.SetNX(ctx, key, value, ttl).Result()
}

func (s *redisIdempotencyStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

func (s *redisIdempotencyStore) Del(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

type cachedResponse struct {
	Status          int    `json:"status"`
	Body            string `json:"body"`
	RequestBodyHash string `json:"requestBodyHash"`
}

// hashRequestBody returns the hex SHA-256 of the body and puts the body back for binding.
func hashRequestBody(c *gin.Context) (string, error) {
	if c.Request.Body == nil {
		return hex.EncodeToString(sha256.New().Sum(nil)), nil
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", err
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:]), nil
}

// bodyCaptureWriter records the response body while writing it to the client.
type bodyCaptureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored 2xx response for a repeated Idempotency-Key.
// Keys are scoped to the authenticated user, so it must run after AuthMiddleware.
// Requests without the header pass through; a key in flight yields 409, and a
// key reused with a different request body yields 422.
func Idempotency(store IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		logger := GetLoggerFromCtx(ctx).With(slog.String("idempotency_key", key))
		userID, _ := GetUserIDFromContext(c)
		cacheKey := idempotencyKeyPrefix + userID + ":" + key
		lockKey := idempotencyLockPrefix + userID + ":" + key

		bodyHash, err := hashRequestBody(c)
		if err != nil {
			logger.Warn("Failed to read request body", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Unreadable request body"})
			return
		}

		raw, err := store.Get(ctx, cacheKey)
		if err == nil {
			var cached cachedResponse
			if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
				if cached.RequestBodyHash != "" && cached.RequestBodyHash != bodyHash {
					logger.Warn("Idempotency key reused with a different request body")
					c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "Idempotency-Key was already used with a different request body"})
					return
				}
				logger.Info("Replaying cached response")
				c.Header("X-Idempotency-Hit", "true")
				c.Data(cached.Status, "application/json; charset=utf-8", []byte(cached.Body))
				c.Abort()
				return
			}
			logger.Warn("Discarding unreadable cached response")
		} else if !errors.Is(err, ErrIdempotencyMiss) {
			logger.Error("Idempotency lookup failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		acquired, err := store.SetNX(ctx, lockKey, "processing", IdempotencyLockTimeout)
		if err != nil {
			logger.Error("Idempotency lock acquisition failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if !acquired {
			logger.Warn("Concurrent request with the same idempotency key")
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "A request with this idempotency key is currently being processed"})
			return
		}

		// the lock must outlive a cancelled request long enough to be released
		releaseCtx := context.WithoutCancel(ctx)
		defer func() {
			if err := store.Del(releaseCtx, lockKey); err != nil {
				logger.Warn("Failed to release idempotency lock", slog.String("error", err.Error()))
			}
		}()

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		status := writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		payload, err := json.Marshal(cachedResponse{Status: status, Body: writer.body.String(), RequestBodyHash: bodyHash})
		if err != nil {
			return
		}
		if err := store.Set(releaseCtx, cacheKey, string(payload), IdempotencyCacheTTL); err != nil {
			logger.Warn("Failed to cache idempotent response", slog.String("error", err.Error()))
		}
	}
}
