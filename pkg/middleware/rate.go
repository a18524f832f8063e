// Package middleware provides HTTP middleware for the admin service.
package middleware

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/shashiranjanraj/kashvi-admin/pkg/cache"
	"github.com/shashiranjanraj/kashvi-admin/pkg/response"
)

// bucket tracks a fixed-window request count for one IP. Used as the
// in-process fallback when Redis is unavailable.
type bucket struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

func (b *bucket) allow(max int, window time.Duration) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	if now.After(b.resetAt) {
		b.count = 0
		b.resetAt = now.Add(window)
	}

	b.count++
	return b.count <= max
}

var (
	bucketsMu sync.Mutex
	buckets   = map[string]*bucket{}
)

func init() {
	// Background goroutine: evict buckets whose window has expired.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			bucketsMu.Lock()
			for ip, b := range buckets {
				b.mu.Lock()
				expired := now.After(b.resetAt)
				b.mu.Unlock()
				if expired {
					delete(buckets, ip)
				}
			}
			bucketsMu.Unlock()
		}
	}()
}

func getBucket(ip string) *bucket {
	bucketsMu.Lock()
	defer bucketsMu.Unlock()

	b, ok := buckets[ip]
	if !ok {
		b = &bucket{}
		buckets[ip] = b
	}
	return b
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit limits each client IP to max requests per window. The counter
// lives in Redis when available so the limit holds across instances;
// otherwise an in-process bucket is used.
func RateLimit(max int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			allowed := true
			if cache.Available() {
				key := fmt.Sprintf("rate:%s:%d", ip, time.Now().Unix()/int64(window.Seconds()))
				n, err := cache.IncrWindow(key, window)
				if err == nil {
					allowed = n <= int64(max)
				} else {
					allowed = getBucket(ip).allow(max, window)
				}
			} else {
				allowed = getBucket(ip).allow(max, window)
			}

			if !allowed {
				response.Error(w, http.StatusTooManyRequests, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
