package notify

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Ledger de idempotência: garante um único alerta visível por
// (appointment, kind, novo status), mesmo com entrega duplicada
type Ledger interface {
	// FirstDelivery retorna true apenas na primeira vez que a chave
	// é vista; entregas repetidas retornam false
	FirstDelivery(ctx context.Context, key string) bool
}

// ===============================
// Memória (dev / testes)
// ===============================

type MemoryLedger struct {
	mu   sync.Mutex
	seen map[string]time.Time
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{seen: make(map[string]time.Time)}
}

func (l *MemoryLedger) FirstDelivery(_ context.Context, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.seen[key]; ok {
		return false
	}
	l.seen[key] = time.Now()
	return true
}

// Sweep descarta entradas mais antigas que maxAge para o ledger
// não crescer sem limite
func (l *MemoryLedger) Sweep(maxAge time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for key, at := range l.seen {
		if at.Before(cutoff) {
			delete(l.seen, key)
			removed++
		}
	}
	return removed
}

// ===============================
// Redis (produção) — eviction por TTL
// ===============================

type RedisLedger struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisLedger(rdb *redis.Client, ttl time.Duration) *RedisLedger {
	return &RedisLedger{rdb: rdb, ttl: ttl}
}

func (l *RedisLedger) FirstDelivery(ctx context.Context, key string) bool {
	ok, err := l.rdb.SetNX(ctx, "notify:seen:"+key, 1, l.ttl).Result()
	if err != nil {
		// Redis fora do ar: melhor alerta duplicado que alerta perdido
		return true
	}
	return ok
}
