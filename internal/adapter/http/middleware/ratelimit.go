package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"tasktrack/pkg/apierrors"
)

// RateLimiter keeps one token bucket per client IP.
func RateLimiter(r rate.Limit, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		visitors = make(map[string]*rate.Limiter)
	)

	getVisitor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		limiter, exists := visitors[ip]
		if !exists {
			limiter = rate.NewLimiter(r, burst)
			visitors[ip] = limiter
		}
		return limiter
	}

	return func(c *gin.Context) {
		if !getVisitor(c.ClientIP()).Allow() {
			lang := GetLang(c)
			c.AbortWithStatusJSON(
				http.StatusTooManyRequests,
				apierrors.CreateError(http.StatusTooManyRequests, apierrors.MsgRateLimited, lang),
			)
			return
		}
		c.Next()
	}
}
