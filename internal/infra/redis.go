package infra

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

func InitRedis() *redis.Client {
	opts, err := redis.ParseURL(os.Getenv("REDIS_URL"))
	if err != nil {
		log.Printf("Error parsing REDIS_URL: %v", err)
		log.Fatal("Error connecting to redis")
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Error pinging redis: %v", err)
		log.Fatal("Error connecting to redis")
	}

	return client
}

func CloseRedis(client *redis.Client) {
	if err := client.Close(); err != nil {
		log.Printf("Error closing redis connection: %v", err)
	} else {
		log.Println("Redis connection closed successfully")
	}
}
