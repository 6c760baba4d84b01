package redis

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyNamespace prefixes every key this service writes.
const KeyNamespace = "homeservice"

const clientName = "homeservice-backend"

// Nil is returned by Get when the key does not exist.
const Nil = redis.Nil

var client *redis.Client

// Init connects the shared client and verifies it with a ping.
// A non-empty password overrides the one in url.
func Init(url, password string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}
	if password != "" {
		opts.Password = password
	}
	opts.ClientName = clientName

	client = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Ping(ctx).Err()
}

// SetClient swaps the shared client, mostly for tests.
func SetClient(c *redis.Client) {
	client = c
}

// GetClient returns the shared client for callers that need pub/sub.
func GetClient() *redis.Client {
	return client
}

func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}

// Key joins parts under KeyNamespace, e.g. Key("idempotency", "abc") is "homeservice:idempotency:abc".
func Key(parts ...string) string {
	return KeyNamespace + ":" + strings.Join(parts, ":")
}

func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return client.Set(ctx, key, value, expiration).Err()
}

func Get(ctx context.Context, key string) (string, error) {
	return client.Get(ctx, key).Result()
}

func Del(ctx context.Context, key string) error {
	return client.Del(ctx, key).Err()
}

// SetNX stores value only when key is absent and reports whether it did.
func SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return client.SetNX(ctx, key, value, expiration).Result()
}
