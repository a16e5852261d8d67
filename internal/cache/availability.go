package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/SaborReal/restaurant-manager/internal/config"
)

// Cache de disponibilidade por data. Melhor esforço: redis fora do ar
// nunca derruba a API, só perde o cache.

const availabilityTTL = 60 * time.Second

type AvailabilityEntry struct {
	Available []string `json:"available"`
	Blocked   []string `json:"blocked"`
}

type Availability struct {
	rdb *redis.Client
}

func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}

func NewAvailability(rdb *redis.Client) *Availability {
	return &Availability{rdb: rdb}
}

func key(date string) string {
	return "availability:" + date
}

func (a *Availability) Get(ctx context.Context, date string) (*AvailabilityEntry, bool) {
	if a == nil || a.rdb == nil {
		return nil, false
	}

	b, err := a.rdb.Get(ctx, key(date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("availability cache get:", err)
		}
		return nil, false
	}

	var entry AvailabilityEntry
	if err := json.Unmarshal(b, &entry); err != nil {
		return nil, false
	}

	return &entry, true
}

func (a *Availability) Set(ctx context.Context, date string, entry AvailabilityEntry) {
	if a == nil || a.rdb == nil {
		return
	}

	b, err := json.Marshal(entry)
	if err != nil {
		return
	}

	if err := a.rdb.Set(ctx, key(date), b, availabilityTTL).Err(); err != nil {
		log.Println("availability cache set:", err)
	}
}

// Invalidate remove a entrada da data. Chamado em toda escrita que
// muda o conjunto de reservas ativas (create, status, delete).
func (a *Availability) Invalidate(ctx context.Context, date string) {
	if a == nil || a.rdb == nil {
		return
	}

	if err := a.rdb.Del(ctx, key(date)).Err(); err != nil {
		log.Println("availability cache invalidate:", err)
	}
}
