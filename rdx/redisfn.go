package rdx

import (
	"log"
	"os"
	"time"

	"stagepass/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}

	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"), // Empty if no password
		DB:       0,                           // Default DB
	})
}

// --- Small command wrappers ---

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxHset(hash, field, value string) error {
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

func RdxHdel(hash, field string) (int64, error) {
	return Conn.HDel(globals.Ctx, hash, field).Result()
}

func SetWithExpiry(key, value string, ttl time.Duration) error {
	err := Conn.Set(globals.Ctx, key, value, ttl).Err()
	if err != nil {
		log.Printf("Redis SET %s failed: %v", key, err)
	}
	return err
}
