package middleware

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/lumiere-salon/salon-scheduler/internal/httperr"
)

// RateLimiter é um limitador de janela fixa apoiado em Redis, por IP.
// Sem Redis configurado (ou indisponível) ele deixa passar: limitar é
// proteção, não dependência dura.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration, prefix string) *RateLimiter {
	if limit <= 0 {
		limit = 100
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &RateLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		prefix: prefix,
	}
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.rdb == nil {
			c.Next()
			return
		}

		key := rl.prefix + ":" + c.ClientIP()

		count, err := rl.incr(c.Request.Context(), key)
		if err != nil {
			// fail-open
			log.Println("rate limiter indisponível:", err)
			c.Next()
			return
		}

		if count > int64(rl.limit) {
			httperr.TooManyRequests(c, "too_many_requests",
				"Muitas requisições, por favor tente novamente mais tarde.")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) incr(ctx context.Context, key string) (int64, error) {
	res, err := fixedWindowScript.Run(
		ctx,
		rl.rdb,
		[]string{key},
		rl.window.Milliseconds(),
	).Result()
	if err != nil {
		return 0, err
	}

	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}
