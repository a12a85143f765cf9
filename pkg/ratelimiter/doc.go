// Package ratelimiter implements per-key token buckets held in memory.
//
//	l, err := ratelimiter.New(ratelimiter.Config{Capacity: 20, RefillRate: 1, RefillInterval: 3 * time.Second})
//	if res := l.Allow(clientIP); !res.Allowed {
//	    // answer 429, Retry-After: res.RetryAfter(time.Now())
//	}
//
// Buckets start full. Tokens are added in whole RefillInterval steps and never
// exceed Capacity. Buckets idle for longer than the stale period are dropped.
package ratelimiter
