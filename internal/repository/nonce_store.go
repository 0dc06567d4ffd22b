package repository

import (
	"context"
	"errors"
	"log"
	"net"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/galacticx/engagement/pkg/cleanup"
)

type RedisCfg struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func NewRedisClient(cfg *RedisCfg) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("error while pinging redis: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return client
}

// NonceStore keeps sign-in challenge nonces single-use across instances.
type NonceStore struct {
	client redis.Cmdable
}

func NewNonceStore(client redis.Cmdable) *NonceStore {
	return &NonceStore{
		client: client,
	}
}

func (ns *NonceStore) Consume(ctx context.Context, nonce string, ttl time.Duration) (bool, error) {
	ok, err := ns.client.SetNX(ctx, "auth:nonce:"+nonce, "1", ttl).Result()
	if err != nil {
		return false, errors.New("recording nonce error: " + err.Error())
	}
	return ok, nil
}
