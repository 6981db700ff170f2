package cache

import (
	"context"
	"log"
	"time"

	appconfig "ordenes_campo/internal/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a client for the configured address, or nil when REDIS_ADDR is not set
// or the server does not answer. Callers fall back to in-process locking on nil.
func ConnectRedis(cfg *appconfig.Config) *redis.Client {
	if cfg.Lock.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Lock.RedisAddr,
		Password: cfg.Lock.RedisPassword,
		DB:       cfg.Lock.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[redis] ping failed addr=%s err=%v; using in-process locks", cfg.Lock.RedisAddr, err)
		_ = client.Close()
		return nil
	}
	log.Printf("[redis] connected addr=%s", cfg.Lock.RedisAddr)
	return client
}
