// Package cache provides a Redis-backed cache of solve records plus the
// distributed per-maze solve lock.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	dmn "github.com/ukramer/maze-solver-dfs/domain"
)

const (
	// default prefix for redis keys
	defaultPrefix string = "mazesolver"
	// default lifetime of cached solutions
	defaultTTL = time.Hour

	// key string formats
	solutionKeyFmt  string = "%s:solution:%s"
	solveLockKeyFmt string = "%s:solve_lock:%s"
)

// Options configures the solution cache.
type Options struct {
	// Prefix for all redis keys
	Prefix string

	// TTL of cached solutions
	TTL time.Duration
}

// RedisSolutionCache stores solve records keyed by maze digest and hands
// out redsync mutexes so one solve runs per digest at a time.
type RedisSolutionCache struct {
	// Redis client
	client *redis.Client

	// Redis lock factory for per-digest solve locks
	locker *redsync.Redsync

	// Cache options
	opts *Options
}

// NewRedisSolutionCache creates a cache with the provided Redis client and options.
func NewRedisSolutionCache(client *redis.Client, opts *Options) (*RedisSolutionCache, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}

	cache := &RedisSolutionCache{
		client: client,
		opts:   opts,
	}
	pool := goredis.NewPool(cache.client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Get returns the cached solve record for a digest, or nil on a miss.
func (rc *RedisSolutionCache) Get(ctx context.Context, digest string) (*dmn.Solution, error) {
	payload, err := rc.client.Get(ctx, rc.solutionKey(digest)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var solution dmn.Solution
	if err := json.Unmarshal([]byte(payload), &solution); err != nil {
		return nil, err
	}
	return &solution, nil
}

// Set stores a solve record under its digest for the configured TTL.
func (rc *RedisSolutionCache) Set(ctx context.Context, solution *dmn.Solution) error {
	payload, err := json.Marshal(solution)
	if err != nil {
		return err
	}
	return rc.client.Set(ctx, rc.solutionKey(solution.MazeDigest), payload, rc.opts.TTL).Err()
}

// Acquire locks the solve mutex for a digest and returns its release func.
func (rc *RedisSolutionCache) Acquire(ctx context.Context, digest string) (func(), error) {
	mutex := rc.locker.NewMutex(rc.solveLockKey(digest))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		_, _ = mutex.Unlock()
	}, nil
}

func (rc *RedisSolutionCache) solutionKey(digest string) string {
	return fmt.Sprintf(solutionKeyFmt, rc.opts.Prefix, digest)
}

func (rc *RedisSolutionCache) solveLockKey(digest string) string {
	return fmt.Sprintf(solveLockKeyFmt, rc.opts.Prefix, digest)
}
