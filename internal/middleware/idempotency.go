package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	idempotencyLockTTL  = 30 * time.Second
	idempotencyCacheTTL = 24 * time.Hour
)

type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency deduplicates retried POSTs keyed by the Idempotency-Key
// header. Requests without the header pass through untouched. A replayed
// key returns the cached response body; a concurrent duplicate of an
// in-flight key gets a 409.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := "idemp:" + c.FullPath() + ":" + idempKey
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(val))
			c.Abort()
			return
		}

		// Lock expires on its own so a crash mid-request cannot wedge the key.
		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			zap.L().Named("middleware.idempotency").Warn("redis lock failed", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": "A request with this idempotency key is already being processed",
			})
			return
		}

		cw := &captureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = cw

		c.Next()

		if c.Writer.Status() == http.StatusCreated {
			if err := rdb.Set(ctx, cacheKey, cw.body.String(), idempotencyCacheTTL).Err(); err != nil {
				zap.L().Named("middleware.idempotency").Warn("response cache failed", zap.Error(err))
			}
		}
		rdb.Del(ctx, lockKey)
	}
}
