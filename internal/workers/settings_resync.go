package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/service"
)

// SettingsResyncJob periodically mirrors the persisted settings policy to
// the autofill runtime. Mirror pushes elsewhere are best-effort, so the
// runtime's copy can lag after a transient failure; this job closes that gap.
type SettingsResyncJob interface {
	Worker

	// Start stops any previously running job and launches a background
	// goroutine that syncs every interval. A non-positive interval defaults
	// to one minute. The goroutine exits when ctx is cancelled or Stop is
	// called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and blocks until it has fully
	// exited. Safe to call when the job is not running.
	Stop()
}

type settingsResyncJob struct {
	settings service.SettingsService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSettingsResyncJob creates a settings resync job. The job is idle until
// Start (or Run) is called.
func NewSettingsResyncJob(settings service.SettingsService, interval time.Duration, logger *logger.Logger) SettingsResyncJob {
	return &settingsResyncJob{settings: settings, interval: interval, logger: logger}
}

// Run implements [Worker] by starting the job with its configured interval.
func (j *settingsResyncJob) Run() {
	j.Start(context.Background(), j.interval)
}

// Start implements [SettingsResyncJob].
func (j *settingsResyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.settings.Sync(jobCtx); err != nil {
					j.logger.Debug().Err(err).Msg("settings resync failed")
				}
			}
		}
	}()
}

// Stop implements [SettingsResyncJob].
func (j *settingsResyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
