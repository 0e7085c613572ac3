package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"redflag/analysis"

	"github.com/redis/go-redis/v9"
)

const reportCacheTTL = 24 * time.Hour

// cachedReport is a completed report together with its owner and digest.
type cachedReport struct {
	OwnerID string           `json:"ownerId"`
	Digest  string           `json:"digest"`
	Report  *analysis.Report `json:"report"`
}

// ReportCache stores rendered reports keyed by scan id. A miss returns
// (nil, nil).
type ReportCache interface {
	Get(ctx context.Context, scanID string) (*cachedReport, error)
	Set(ctx context.Context, scanID string, entry *cachedReport) error
	Delete(ctx context.Context, scanID string) error
}

// redisReportCache is the ReportCache backed by Redis.
type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// newRedisReportCache connects to the Redis server at url, for example
// redis://localhost:6379/0.
func newRedisReportCache(ctx context.Context, url string) (*redisReportCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	return &redisReportCache{client: client, ttl: reportCacheTTL}, nil
}

func reportCacheKey(scanID string) string {
	return fmt.Sprintf("report:%s", scanID)
}

func (r *redisReportCache) Get(ctx context.Context, scanID string) (*cachedReport, error) {
	raw, err := r.client.Get(ctx, reportCacheKey(scanID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var entry cachedReport
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("corrupt cached report: %w", err)
	}
	return &entry, nil
}

func (r *redisReportCache) Set(ctx context.Context, scanID string, entry *cachedReport) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, reportCacheKey(scanID), raw, r.ttl).Err()
}

func (r *redisReportCache) Delete(ctx context.Context, scanID string) error {
	return r.client.Del(ctx, reportCacheKey(scanID)).Err()
}

func (r *redisReportCache) Close() error {
	return r.client.Close()
}

// noopReportCache is used when REDIS_URL is not configured.
type noopReportCache struct{}

func (noopReportCache) Get(context.Context, string) (*cachedReport, error) { return nil, nil }

func (noopReportCache) Set(context.Context, string, *cachedReport) error { return nil }

func (noopReportCache) Delete(context.Context, string) error { return nil }
