package jobs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"laundrylink.backend/internal/domain/entities"
	"laundrylink.backend/pkg/metrics"
)

// quoteExpiryStore is the subset of the quote repository the job needs
type quoteExpiryStore interface {
	GetExpiredPending(ctx context.Context, limit int) ([]*entities.PriceQuote, error)
	ExpireQuotes(ctx context.Context, ids []uuid.UUID) error
}

// QuoteExpiryJob sweeps pending quotes past their validity window
type QuoteExpiryJob struct {
	repo     quoteExpiryStore
	interval time.Duration
	stop     chan struct{}
}

func NewQuoteExpiryJob(repo quoteExpiryStore) *QuoteExpiryJob {
	return &QuoteExpiryJob{
		repo:     repo,
		interval: 60 * time.Second, // Check every minute
		stop:     make(chan struct{}),
	}
}

func (j *QuoteExpiryJob) Start(ctx context.Context) {
	log.Println("🕐 Starting quote expiry job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Quote expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Quote expiry job stopped")
			return
		case <-ticker.C:
			j.processExpiredQuotes(ctx)
		}
	}
}

func (j *QuoteExpiryJob) Stop() {
	close(j.stop)
}

func (j *QuoteExpiryJob) processExpiredQuotes(ctx context.Context) {
	expired, err := j.repo.GetExpiredPending(ctx, 100)
	if err != nil {
		log.Printf("❌ Error fetching expired quotes: %v", err)
		return
	}

	if len(expired) == 0 {
		return
	}

	log.Printf("🔄 Processing %d expired quotes...", len(expired))

	var ids []uuid.UUID
	for _, q := range expired {
		ids = append(ids, q.ID)
	}

	if err := j.repo.ExpireQuotes(ctx, ids); err != nil {
		log.Printf("❌ Error expiring quotes: %v", err)
		return
	}

	metrics.QuotesExpiredTotal.Add(float64(len(expired)))
	log.Printf("✅ Expired %d quotes", len(expired))
}
