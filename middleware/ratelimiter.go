package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// NewLimiterStore shares counters through Redis when a client is given,
// otherwise keeps them in process memory.
func NewLimiterStore(client *redis.Client) limiter.Store {
	if client == nil {
		return memory.NewStore()
	}
	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix: "eventlottery:ratelimit",
	})
	if err != nil {
		log.Printf("⚠️ Redis rate limit store unavailable, using memory: %v", err)
		return memory.NewStore()
	}
	return store
}

// RateLimiter returns a Gin middleware that limits requests per IP
func RateLimiter(store limiter.Store, perMinute int64) gin.HandlerFunc {
	if perMinute <= 0 {
		perMinute = 100
	}
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  perMinute,
	}

	// 📊 Limiter instance
	instance := limiter.New(store, rate)

	// 🚦 Gin-compatible middleware
	return ginlimiter.NewMiddleware(instance)
}
