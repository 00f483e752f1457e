package handlers

import (
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const unauthorizedMessage = "Unauthorized. Make a GET request to /api/auth to get an access token."

// publicPath reports whether a request path is exempt from the token gate:
// the info endpoint and the auth endpoint.
func publicPath(path string) bool {
	trimmed := strings.TrimSuffix(path, "/")
	return trimmed == "/api" || trimmed == "/api/auth"
}

// AuthMiddleware classifies every request independently: public paths pass,
// everything else needs a verifiable token header.
func (h *Handlers) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if publicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		tokenString := c.GetHeader("token")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": unauthorizedMessage})
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(h.cfg.JWTSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))

		if err != nil || !token.Valid {
			log.Printf("token verification failed for %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": unauthorizedMessage})
			return
		}

		if claims, ok := token.Claims.(*Claims); ok {
			c.Set("username", claims.Username)
		}
		c.Next()
	}
}

// RequestLogger tags each request with an id and logs the method and path.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		log.Printf("[%s] %s %s", requestID[:8], c.Request.Method, c.Request.URL.Path)
		c.Next()
	}
}

const limiterIdleTTL = 10 * time.Minute

// clientLimiters hands out one limiter per client IP. Entries idle for
// limiterIdleTTL are swept on the next lookup so the map stays bounded by
// recently active clients.
type clientLimiters struct {
	mu        sync.Mutex
	entries   map[string]*clientLimiter
	lastSweep time.Time
	now       func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiters() *clientLimiters {
	return &clientLimiters{entries: make(map[string]*clientLimiter), now: time.Now}
}

func (cl *clientLimiters) get(ip string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := cl.now()
	if now.Sub(cl.lastSweep) >= limiterIdleTTL {
		for key, entry := range cl.entries {
			if now.Sub(entry.lastSeen) >= limiterIdleTTL {
				delete(cl.entries, key)
			}
		}
		cl.lastSweep = now
	}

	entry, ok := cl.entries[ip]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(rate.Every(6*time.Second), 10)}
		cl.entries[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// AuthRateLimiter throttles the auth endpoint to 10 requests per minute per
// client IP.
func (h *Handlers) AuthRateLimiter() gin.HandlerFunc {
	limiters := newClientLimiters()

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Rate limit exceeded"})
			return
		}
		c.Next()
	}
}
