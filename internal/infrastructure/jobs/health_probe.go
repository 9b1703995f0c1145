package jobs

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"
	"laundrylink.backend/pkg/metrics"
	"laundrylink.backend/pkg/redis"
)

// HealthProbeJob pings the database and Redis on an interval and exposes the
// results through the liveness gauges scraped at /metrics.
type HealthProbeJob struct {
	db       *gorm.DB
	interval time.Duration
	stop     chan struct{}
}

func NewHealthProbeJob(db *gorm.DB) *HealthProbeJob {
	return &HealthProbeJob{
		db:       db,
		interval: 15 * time.Second,
		stop:     make(chan struct{}),
	}
}

func (j *HealthProbeJob) Start(ctx context.Context) {
	log.Println("🕐 Starting health probe job...")

	// prime the gauges before the first tick
	j.probe(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Health probe job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Health probe job stopped")
			return
		case <-ticker.C:
			j.probe(ctx)
		}
	}
}

func (j *HealthProbeJob) Stop() {
	close(j.stop)
}

func (j *HealthProbeJob) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	metrics.DatabaseUp.Set(boolToGauge(j.pingDatabase(probeCtx)))
	metrics.RedisUp.Set(boolToGauge(pingRedis(probeCtx)))
}

func pingRedis(ctx context.Context) bool {
	if redis.GetClient() == nil {
		return false
	}
	return redis.Ping(ctx) == nil
}

func (j *HealthProbeJob) pingDatabase(ctx context.Context) bool {
	if j.db == nil {
		return false
	}
	sqlDB, err := j.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.PingContext(ctx) == nil
}

func boolToGauge(up bool) float64 {
	if up {
		return 1
	}
	return 0
}
