package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/AnarosBeauty/salon-scheduler/internal/config"
)

// ScheduleCache garde le planning journalier par employé(e), invalidé par
// clé à chaque mutation de rendez-vous. Sans Redis configuré, toutes les
// opérations sont des no-ops : le cache est un confort, jamais une
// dépendance dure.
type ScheduleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewScheduleCache(cfg *config.Config) *ScheduleCache {
	if cfg.RedisAddr == "" {
		return &ScheduleCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.WithError(err).Warn("redis unreachable, schedule cache disabled")
		return &ScheduleCache{}
	}

	logrus.WithField("addr", cfg.RedisAddr).Info("schedule cache enabled")
	return &ScheduleCache{
		client: client,
		ttl:    time.Minute,
	}
}

func (sc *ScheduleCache) Enabled() bool {
	return sc != nil && sc.client != nil
}

func key(staffID string, day time.Time) string {
	return fmt.Sprintf("salon:schedule:%s:%s", staffID, day.Format("2006-01-02"))
}

// Get retourne le JSON mis en cache, ou "" si absent/indisponible.
func (sc *ScheduleCache) Get(ctx context.Context, staffID string, day time.Time) string {
	if !sc.Enabled() {
		return ""
	}

	val, err := sc.client.Get(ctx, key(staffID, day)).Result()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).Debug("schedule cache read failed")
		}
		return ""
	}
	return val
}

func (sc *ScheduleCache) Set(ctx context.Context, staffID string, day time.Time, payload string) {
	if !sc.Enabled() {
		return
	}

	if err := sc.client.Set(ctx, key(staffID, day), payload, sc.ttl).Err(); err != nil {
		logrus.WithError(err).Debug("schedule cache write failed")
	}
}

// Invalidate supprime les plannings touchés par une mutation. Un rendez-vous
// peut chevaucher deux dates si start et end tombent sur des jours distincts.
func (sc *ScheduleCache) Invalidate(ctx context.Context, staffID string, days ...time.Time) {
	if !sc.Enabled() {
		return
	}

	keys := make([]string, 0, len(days))
	seen := make(map[string]struct{}, len(days))
	for _, d := range days {
		k := key(staffID, d)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	if len(keys) == 0 {
		return
	}

	if err := sc.client.Del(ctx, keys...).Err(); err != nil {
		logrus.WithError(err).Debug("schedule cache invalidation failed")
	}
}
