// Package redis connects to Redis with go-redis/v9 for the catalog cache.
//
// Connect retries until the server answers PING or ConnectTimeout elapses.
// Healthcheck returns a probe suitable for httpserver.HealthCheckHandler.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := cache.NewRedisStore(client, cache.WithKeyPrefix("clubhouse:"))
package redis
