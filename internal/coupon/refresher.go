package coupon

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Refresher refreshes a Book on a cron schedule.
type Refresher struct {
	book    *Book
	cron    *cron.Cron
	timeout time.Duration
	logger  zerolog.Logger
}

// NewRefresher schedules book refreshes. expr is a cron expression or descriptor
// such as "@every 5m". Each refresh is bounded by timeout.
func NewRefresher(book *Book, expr string, timeout time.Duration, logger zerolog.Logger) (*Refresher, error) {
	r := &Refresher{
		book:    book,
		cron:    cron.New(),
		timeout: timeout,
		logger:  logger.With().Str("component", "coupon-refresher").Logger(),
	}

	if _, err := r.cron.AddFunc(expr, r.run); err != nil {
		return nil, fmt.Errorf("invalid coupon refresh schedule %q: %w", expr, err)
	}

	return r, nil
}

// Start begins running scheduled refreshes in the background.
func (r *Refresher) Start() {
	r.logger.Info().Msg("coupon refresher started")
	r.cron.Start()
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
	r.logger.Info().Msg("coupon refresher stopped")
}

func (r *Refresher) run() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	// Refresh logs its own failures and keeps the previous list.
	_ = r.book.Refresh(ctx)
}
