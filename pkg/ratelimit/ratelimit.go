// Package ratelimit ограничивает частоту запросов по ключу (пользователь или IP)
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter проверяет, можно ли пропустить очередной запрос для ключа
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// MemoryLimiter token bucket на каждый ключ в памяти процесса
type MemoryLimiter struct {
	mu       sync.Mutex
	limiters map[string]*entry
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewMemoryLimiter создаёт лимитер: requestsPerMinute в минуту с запасом burst.
// Бакеты, не использовавшиеся дольше idleTTL, удаляются при очередном обращении.
func NewMemoryLimiter(requestsPerMinute int, burst int, idleTTL time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limiters: make(map[string]*entry),
		limit:    rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    burst,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Allow расходует один токен бакета ключа
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evictIdle(now)

	e, ok := l.limiters[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = e
	}
	e.lastSeen = now

	return e.limiter.AllowN(now, 1), nil
}

// Size возвращает количество отслеживаемых ключей
func (l *MemoryLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *MemoryLimiter) evictIdle(now time.Time) {
	if l.idleTTL <= 0 {
		return
	}
	for key, e := range l.limiters {
		if now.Sub(e.lastSeen) > l.idleTTL {
			delete(l.limiters, key)
		}
	}
}
