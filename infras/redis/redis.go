package redis

import (
	"context"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"frontdesk/config"
)

const pingTimeout = 5 * time.Second

// New connects to the primary Redis node and exits the process when it does not answer.
func New(cfg *config.Config) *goRedis.Client {
	node := cfg.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     node.Addr(),
		Password: node.Password,
		DB:       node.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", node.Addr()).Msg("Failed to connect to Redis")
	}

	log.Info().Str("addr", node.Addr()).Int("db", node.DB).Msg("Connected to Redis")

	return client
}
