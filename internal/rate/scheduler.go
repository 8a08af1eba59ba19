package rate

import (
	"context"
	"time"

	"nexrates/internal/adapters"

	"github.com/go-co-op/gocron/v2"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultUpdateInterval = 24 * time.Hour

type Scheduler struct {
	repo     adapters.DayRatesRepository
	reader   *FeedReader
	cache    adapters.DayRatesCache
	lockPath string
	interval time.Duration
	// -----
	lock  *flock.Flock
	sched gocron.Scheduler
}

// Start acquires the single-instance lock and schedules the recurring update
// job plus a one-shot startup backfill. Losing the lock race disables the
// whole scheduling subsystem for this process lifetime; queries keep being
// served.
func (s *Scheduler) Start(ctx context.Context) error {
	fileLock := flock.New(s.lockPath)
	locked, err := fileLock.TryLock()
	if err != nil || !locked {
		logrus.WithError(err).Warnf("Scheduler lock %q is held elsewhere, rates ingestion disabled for this instance", s.lockPath)
		return nil
	}
	s.lock = fileLock

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if ingErr := IngestPublishedRates(jobCtx, execID, s.repo, s.reader, s.cache); ingErr != nil {
			logrus.Errorf("Ingest published rates job %s failed: %v", execID, ingErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	// The persisted-days count is logged for operators only; the backfill run
	// is scheduled unconditionally.
	if count, countErr := s.repo.CountAll(ctx); countErr != nil {
		logrus.WithError(countErr).Warn("Failed to count persisted days")
	} else {
		logrus.Debugf("%d day(s) of exchange rates currently persisted", count)
	}

	_, err = scheduler.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartImmediately()),
		gocron.NewTask(job),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

// Enabled reports whether this instance won the lock and runs ingestion jobs.
func (s *Scheduler) Enabled() bool {
	return s.sched != nil
}

func (s *Scheduler) Shutdown() error {
	if s.lock != nil {
		_ = s.lock.Unlock()
		s.lock = nil
	}
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(repo adapters.DayRatesRepository, reader *FeedReader, cache adapters.DayRatesCache, lockPath string, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = defaultUpdateInterval
	}
	return &Scheduler{repo: repo, reader: reader, cache: cache, lockPath: lockPath, interval: interval}
}
