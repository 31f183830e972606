package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/hospedaje-lider-api/internal/application/dto"
)

const limiterIdle = 5 * time.Minute

type visitante struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiter token bucket por IP; los visitantes inactivos se descartan.
type ipLimiter struct {
	mu        sync.Mutex
	visitas   map[string]*visitante
	every     rate.Limit
	burst     int
	lastSweep time.Time
}

func (l *ipLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > limiterIdle {
		for k, v := range l.visitas {
			if now.Sub(v.lastSeen) > limiterIdle {
				delete(l.visitas, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitas[ip]
	if !ok {
		v = &visitante{limiter: rate.NewLimiter(l.every, l.burst)}
		l.visitas[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// RateLimit limita a perMinute peticiones por minuto e IP. Con perMinute <= 0 no limita.
func RateLimit(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	l := &ipLimiter{
		visitas:   map[string]*visitante{},
		every:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:     perMinute,
		lastSweep: time.Now(),
	}
	return func(c *fiber.Ctx) error {
		if !l.allow(c.IP(), time.Now()) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Error: "Demasiadas solicitudes, intente más tarde", Code: "RATE_LIMITED"})
		}
		return c.Next()
	}
}
