package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/arvndkumar/UserService/internal/auth/domain"
)

// Sweeper periodically removes password reset tokens that are past expiry.
// Expired rows are otherwise left behind: the confirm path rejects them but
// never deletes them.
type Sweeper struct {
	resetRepo domain.ResetTokenRepository
	interval  time.Duration
	logger    *zap.Logger
}

func New(resetRepo domain.ResetTokenRepository, interval time.Duration, logger *zap.Logger) *Sweeper {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Sweeper{
		resetRepo: resetRepo,
		interval:  interval,
		logger:    logger,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

func (s *Sweeper) Sweep(ctx context.Context) {
	deleted, err := s.resetRepo.DeleteExpiredResetTokens(ctx, time.Now())
	if err != nil {
		s.logger.Warn("failed to sweep expired reset tokens", zap.Error(err))
		return
	}

	if deleted > 0 {
		s.logger.Info("swept expired reset tokens", zap.Int64("deleted", deleted))
	}
}
