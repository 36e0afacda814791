package service

import (
	"sync"
	"sync/atomic"
	"time"

	"hospital-booking-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// LockSweeper periodically deletes long-expired slot-lock rows.
//
// Expiry itself is enforced at read time (expires_at > now filters), so
// the sweeper is not a correctness mechanism; it only bounds table
// growth from abandoned locks. Rows are kept for a grace period past
// expiry so recent conflicts remain inspectable.
type LockSweeper struct {
	db       *gorm.DB
	lockRepo repository.SlotLockRepository
	log      *logrus.Logger

	interval time.Duration
	grace    time.Duration

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// NewLockSweeper creates a LockSweeper. Call Start to begin sweeping
// and Stop during graceful shutdown.
func NewLockSweeper(db *gorm.DB, lockRepo repository.SlotLockRepository, log *logrus.Logger, interval, grace time.Duration) *LockSweeper {
	return &LockSweeper{
		db:       db,
		lockRepo: lockRepo,
		log:      log,
		interval: interval,
		grace:    grace,
		stopChan: make(chan struct{}),
	}
}

// Start launches the background sweep loop.
func (s *LockSweeper) Start() {
	s.wg.Add(1)
	go s.sweepLoop()
}

// Stop shuts down the sweep loop. Safe to call multiple times.
func (s *LockSweeper) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("LockSweeper stopped")
	}
}

func (s *LockSweeper) sweepLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			s.log.Debug("Lock sweep goroutine stopping")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *LockSweeper) sweep() {
	cutoff := time.Now().Add(-s.grace)

	deleted, err := s.lockRepo.DeleteExpiredBefore(s.db, cutoff)
	if err != nil {
		s.log.Warnf("Failed to sweep expired slot locks: %+v", err)
		return
	}

	if deleted > 0 {
		s.log.Infof("Swept %d expired slot locks older than %v", deleted, cutoff)
	}
}
