package middlewares

import (
	"golang.org/x/time/rate"
	"ircwire/internal/app/infrastructure/storage"
	"sync"
	"time"
)

type Middlewares struct {
	mu       sync.Mutex
	limiters *storage.Cache[*rate.Limiter]
}

func New() *Middlewares {
	return &Middlewares{
		limiters: storage.NewCache[*rate.Limiter](10000, 10*time.Minute),
	}
}
