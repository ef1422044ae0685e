package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookshelf-backend/pkg/cache"
)

// cacheHitKey marks a request served from the response cache, for the
// request logger.
const cacheHitKey = "cache_hit"

// cachedResponse is what the cache layer stores per endpoint key: enough to
// replay the response without invoking the handler again.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// KeyFunc computes the cache key for a request.
type KeyFunc func(c *gin.Context) string

// StaticKey caches a whole-collection endpoint under one fixed key.
func StaticKey(key string) KeyFunc {
	return func(*gin.Context) string {
		return key
	}
}

// ParamKey caches a single-resource endpoint under prefix + ":" + path
// parameter. The delimiter keeps single-resource keys out of the collection
// key space: ids are free-form strings, so "getauthor"+"s" would otherwise
// land on the "getauthors" collection entry.
func ParamKey(prefix, param string) KeyFunc {
	return func(c *gin.Context) string {
		return prefix + ":" + c.Param(param)
	}
}

// Cached wraps a read endpoint with a TTL-bounded response cache. On a hit
// the stored response is replayed and the handler chain is skipped; on a miss
// the handler runs and a 200 response is stored under the key. Entries expire
// only by time: a write does not evict the corresponding read entry, so reads
// may be stale for up to the TTL after a write.
//
// Cache backend failures are logged and the request falls through to the
// handler; caching never turns a good response into an error.
func Cached(store cache.Cache, ttl time.Duration, key KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		k := key(c)

		var entry cachedResponse
		found, err := store.Get(c.Request.Context(), k, &entry)
		if err != nil {
			log.Warn().Err(err).Str("key", k).Msg("Cache read failed")
		}
		if found {
			c.Set(cacheHitKey, true)
			c.Data(entry.Status, entry.ContentType, entry.Body)
			c.Abort()
			return
		}

		w := &bodyCapture{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w

		c.Next()

		if w.Status() != http.StatusOK {
			return
		}

		entry = cachedResponse{
			Status:      w.Status(),
			ContentType: w.Header().Get("Content-Type"),
			Body:        w.body.Bytes(),
		}
		if err := store.Set(c.Request.Context(), k, entry, ttl); err != nil {
			log.Warn().Err(err).Str("key", k).Msg("Cache write failed")
		}
	}
}

// bodyCapture duplicates everything written to the response into a buffer so
// the cache can store it.
type bodyCapture struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCapture) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
