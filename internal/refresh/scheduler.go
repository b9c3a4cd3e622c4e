package refresh

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/foliohq/folio-portal/internal/common"
)

// Job is a scheduled refresh task for one dashboard resource.
type Job interface {
	Run() error
	Name() string
}

// Scheduler runs the per-resource refresh jobs on fixed intervals. Each
// job is wrapped with a skip-if-still-running guard so a slow fetch is
// never overlapped by the next tick of the same resource; other
// resources keep their own schedules independently.
type Scheduler struct {
	cron   *cron.Cron
	logger *common.Logger
}

// NewScheduler creates an empty scheduler.
func NewScheduler(logger *common.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithChain(cron.SkipIfStillRunning(newCronLogger(logger))),
		),
		logger: logger,
	}
}

// AddJob registers a job to run every intervalSeconds.
func (s *Scheduler) AddJob(intervalSeconds int, job Job) error {
	if intervalSeconds <= 0 {
		return fmt.Errorf("invalid interval %d for job %s", intervalSeconds, job.Name())
	}

	schedule := fmt.Sprintf("@every %ds", intervalSeconds)
	_, err := s.cron.AddFunc(schedule, func() {
		if err := job.Run(); err != nil {
			s.logger.Warn().
				Err(err).
				Str("job", job.Name()).
				Msg("Refresh job failed, waiting for next tick")
			return
		}
		s.logger.Debug().Str("job", job.Name()).Msg("Refresh job completed")
	})
	if err != nil {
		return fmt.Errorf("failed to register job %s: %w", job.Name(), err)
	}

	s.logger.Info().
		Str("job", job.Name()).
		Str("schedule", schedule).
		Msg("Refresh job registered")

	return nil
}

// RunNow executes a job immediately, outside its schedule. Used at
// startup to warm the cache before the first tick.
func (s *Scheduler) RunNow(job Job) {
	if err := job.Run(); err != nil {
		s.logger.Warn().Err(err).Str("job", job.Name()).Msg("Initial refresh failed")
	}
}

// Start begins ticking registered jobs.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info().Msg("Refresh scheduler started")
}

// Stop halts the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("Refresh scheduler stopped")
}

// cronLogger adapts common.Logger to the cron.Logger interface so the
// skip-if-still-running chain reports through the application log.
type cronLogger struct {
	logger *common.Logger
}

func newCronLogger(logger *common.Logger) cron.Logger {
	return &cronLogger{logger: logger}
}

func (l *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Str("cron", fmt.Sprint(keysAndValues...)).Msg(msg)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Err(err).Str("cron", fmt.Sprint(keysAndValues...)).Msg(msg)
}
