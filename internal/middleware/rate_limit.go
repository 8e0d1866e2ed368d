package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
	"go.uber.org/zap"
)

// RateLimit membatasi request per client IP. Counter disimpan di Redis supaya
// limit tetap berlaku konsisten saat API berjalan lebih dari satu instance.
// format contoh: "100-M" = 100 request per menit.
func RateLimit(rdb *redis.Client, format string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		zap.L().Fatal("invalid rate limit format", zap.String("format", format), zap.Error(err))
	}

	store, err := sredis.NewStoreWithOptions(rdb, limiter.StoreOptions{
		Prefix: "ratelimit",
	})
	if err != nil {
		zap.L().Fatal("create redis rate limit store failed", zap.Error(err))
	}

	return mgin.NewMiddleware(limiter.New(store, rate))
}
