package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"product-describer/internal/shared/server/respond"
)

const (
	defaultRateLimitGroup = "DEFAULT"
	defaultIPFactor       = 4
	sweepEvery            = time.Minute
	idleSlack             = time.Minute
)

// RateLimitRule is a token bucket refilled at Rate tokens per second up to Burst.
type RateLimitRule struct {
	Rate  float64
	Burst int
}

// scaled returns the rule multiplied by f, keeping at least one token of burst.
func (r RateLimitRule) scaled(f float64) RateLimitRule {
	return RateLimitRule{Rate: r.Rate * f, Burst: max(1, int(math.Ceil(float64(r.Burst)*f)))}
}

// fullAfter is how long an empty bucket takes to refill completely.
func (r RateLimitRule) fullAfter() time.Duration {
	return time.Duration(float64(r.Burst) / r.Rate * float64(time.Second))
}

// RateLimitConfig maps request groups to rules. GroupFor picks the group of a
// request; requests in groups without a rule are not limited.
//
// Every request draws from two buckets: one per caller and one per client IP.
// The IP bucket is the caller rule scaled by IPFactor, so several guests can
// share an address while rotating guest ids from one address stays bounded.
type RateLimitConfig struct {
	Rules        map[string]RateLimitRule
	DefaultGroup string
	GroupFor     func(*gin.Context) string
	IPFactor     float64
	Limiter      *RateLimiter
}

// RateLimiter keeps token buckets keyed by caller or IP and group. Buckets idle
// long enough to be full again are dropped, since a missing bucket is full.
type RateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*rateBucket
	now       func() time.Time
	lastSweep time.Time
}

type rateBucket struct {
	tokens  float64
	last    time.Time
	expires time.Duration
}

// Limit is one bucket a request draws a token from.
type Limit struct {
	Key  string
	Rule RateLimitRule
}

func NewRateLimiter(now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{
		buckets:   make(map[string]*rateBucket),
		now:       now,
		lastSweep: now(),
	}
}

func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limiter == nil {
		cfg.Limiter = NewRateLimiter(nil)
	}
	if cfg.DefaultGroup == "" {
		cfg.DefaultGroup = defaultRateLimitGroup
	}
	if cfg.IPFactor <= 0 {
		cfg.IPFactor = defaultIPFactor
	}
	return func(c *gin.Context) {
		group := cfg.DefaultGroup
		if cfg.GroupFor != nil {
			if g := strings.TrimSpace(cfg.GroupFor(c)); g != "" {
				group = g
			}
		}
		rule, ok := cfg.Rules[group]
		if !ok {
			c.Next()
			return
		}

		ip := strings.TrimSpace(c.ClientIP())
		limits := []Limit{{Key: "ip:" + ip + "|" + group, Rule: rule.scaled(cfg.IPFactor)}}
		if principal := strings.TrimSpace(UserIDFromContext(c)); principal != "" {
			limits = append(limits, Limit{Key: principal + "|" + group, Rule: rule})
		}

		allowed, retryAfter := cfg.Limiter.AllowAll(limits...)
		if allowed {
			c.Next()
			return
		}
		retryAfterMs := int(retryAfter / time.Millisecond)
		if retryAfterMs <= 0 {
			retryAfterMs = 1000
		}
		retryAfterSeconds := int(math.Ceil(float64(retryAfterMs) / 1000.0))
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
		respond.Error(c, http.StatusTooManyRequests, "rate_limited", "Too many requests, slow down",
			gin.H{"retryAfterMs": retryAfterMs})
	}
}

// Allow draws one token from a single bucket.
func (l *RateLimiter) Allow(key string, rule RateLimitRule) (bool, time.Duration) {
	return l.AllowAll(Limit{Key: key, Rule: rule})
}

// AllowAll draws one token from every bucket, or from none when any of them is
// empty. The returned wait is the longest refill among the empty buckets.
func (l *RateLimiter) AllowAll(limits ...Limit) (bool, time.Duration) {
	if l == nil {
		return true, 0
	}
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sweep(now)

	var (
		active []Limit
		tokens []float64
		wait   time.Duration
	)
	for _, lim := range limits {
		if lim.Rule.Rate <= 0 || lim.Rule.Burst <= 0 {
			continue
		}
		avail := float64(lim.Rule.Burst)
		if bucket, ok := l.buckets[lim.Key]; ok {
			elapsed := now.Sub(bucket.last).Seconds()
			avail = bucket.tokens
			if elapsed > 0 {
				avail = math.Min(avail+elapsed*lim.Rule.Rate, float64(lim.Rule.Burst))
			}
		}
		if avail < 1 {
			waitSec := (1 - avail) / lim.Rule.Rate
			if w := time.Duration(math.Ceil(waitSec*1000.0)) * time.Millisecond; w > wait {
				wait = w
			}
		}
		active = append(active, lim)
		tokens = append(tokens, avail)
	}
	if wait > 0 {
		return false, wait
	}

	// Buckets are only stored once a token is taken, so rejected callers
	// never add entries.
	for i, lim := range active {
		l.buckets[lim.Key] = &rateBucket{
			tokens:  tokens[i] - 1,
			last:    now,
			expires: lim.Rule.fullAfter() + idleSlack,
		}
	}
	return true, 0
}

// Len reports how many buckets are tracked.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *RateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < sweepEvery {
		return
	}
	l.lastSweep = now
	for key, bucket := range l.buckets {
		if now.Sub(bucket.last) > bucket.expires {
			delete(l.buckets, key)
		}
	}
}
