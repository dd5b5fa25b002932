// Package cache provides a Redis-backed store for computed reports.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"
	redis "github.com/redis/go-redis/v9"

	"profitline/internal/domain/report"
)

// RedisReportCache implements report.Cache on Redis.
// Payloads are zstd-compressed JSON; report snapshots for the wider
// granularities compress well since most periods repeat the same zeros.
type RedisReportCache struct {
	client  *redis.Client
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewRedisReportCache connects to Redis and prepares the zstd codec.
func NewRedisReportCache(addr, password string, db int) (*RedisReportCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &RedisReportCache{
		client:  client,
		encoder: encoder,
		decoder: decoder,
	}, nil
}

// Ping verifies the Redis connection.
func (c *RedisReportCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the Redis connection and codec resources.
func (c *RedisReportCache) Close() error {
	c.encoder.Close()
	c.decoder.Close()
	return c.client.Close()
}

// Get returns a cached report, ok=false on a miss.
func (c *RedisReportCache) Get(ctx context.Context, key string) (*report.Report, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	payload, err := c.decoder.DecodeAll(val, nil)
	if err != nil {
		return nil, false, fmt.Errorf("decompress report: %w", err)
	}

	var rep report.Report
	if err := json.Unmarshal(payload, &rep); err != nil {
		return nil, false, fmt.Errorf("decode report: %w", err)
	}
	return &rep, true, nil
}

// Set stores a report under key for the given TTL.
func (c *RedisReportCache) Set(ctx context.Context, key string, rep *report.Report, ttl time.Duration) error {
	if rep == nil {
		return nil
	}
	payload, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	compressed := c.encoder.EncodeAll(payload, nil)
	return c.client.Set(ctx, key, compressed, ttl).Err()
}
