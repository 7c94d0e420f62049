package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gabovieira/ali300-consultores/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// limiter is a fixed-window per-IP counter. One instance per protected
// surface (login, general API); each instance purges its own map.
type limiter struct {
	mu       sync.Mutex
	ventanas map[string]*ventana
	limit    int
	period   time.Duration
	mensaje  string
}

type ventana struct {
	count int
	reset time.Time
}

const purgeInterval = 5 * time.Minute

func newLimiter(limit int, period time.Duration, mensaje string) *limiter {
	l := &limiter{
		ventanas: make(map[string]*ventana),
		limit:    limit,
		period:   period,
		mensaje:  mensaje,
	}
	go l.purge()
	return l
}

func (l *limiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.mensaje))
			return
		}
		c.Next()
	}
}

func (l *limiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	v, ok := l.ventanas[ip]
	if !ok || now.After(v.reset) {
		l.ventanas[ip] = &ventana{count: 1, reset: now.Add(l.period)}
		return true
	}
	v.count++
	return v.count <= l.limit
}

// purge drops expired windows so IPs that never return do not accumulate.
func (l *limiter) purge() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		purged := 0
		for ip, v := range l.ventanas {
			if now.After(v.reset) {
				delete(l.ventanas, ip)
				purged++
			}
		}
		l.mu.Unlock()
		if purged > 0 {
			log.Debug().Int("purged", purged).Msg("rate limiter windows purged")
		}
	}
}

// LoginRateLimiter caps login attempts at 20 per minute per IP. Credential
// stuffing against /v1/auth/login is the only brute-force surface this API has.
func LoginRateLimiter() gin.HandlerFunc {
	return newLimiter(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.").handler()
}

// RateLimiter is the general per-IP limiter applied to the whole API.
func RateLimiter(limit int, period time.Duration) gin.HandlerFunc {
	return newLimiter(limit, period, "Demasiadas solicitudes. Intente nuevamente en un momento.").handler()
}
