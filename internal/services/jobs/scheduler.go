package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/admin/tg-bots/resume-bot/internal/ports/jobs"
	"github.com/admin/tg-bots/resume-bot/internal/ports/service"
)

// defaultRetryDelays паузы перед повторами упавшей джобы: now + 1m + 10m + 30m
var defaultRetryDelays = []time.Duration{
	1 * time.Minute,
	10 * time.Minute,
	30 * time.Minute,
}

// Scheduler управляет запуском периодических джоб
type Scheduler struct {
	jobs           []jobs.Job
	retryDelays    []time.Duration
	alerterService service.IAlerterService
	log            *slog.Logger
}

// NewScheduler создаёт новый планировщик джоб, alerterService может быть nil
func NewScheduler(log *slog.Logger, alerterService service.IAlerterService) *Scheduler {
	return &Scheduler{
		jobs:           make([]jobs.Job, 0),
		retryDelays:    defaultRetryDelays,
		alerterService: alerterService,
		log:            log,
	}
}

// SetRetryDelays заменяет паузы между повторами
func (s *Scheduler) SetRetryDelays(delays ...time.Duration) {
	s.retryDelays = delays
}

// Register регистрирует джобу в планировщике
func (s *Scheduler) Register(job jobs.Job) {
	s.jobs = append(s.jobs, job)
	s.log.Debug("job registered", "job_name", job.Name(), "total_jobs", len(s.jobs))
}

// Start запускает все зарегистрированные джобы, каждая в своей горутине до отмены ctx
func (s *Scheduler) Start(ctx context.Context) error {
	if len(s.jobs) == 0 {
		s.log.Warn("no jobs registered, scheduler not started")
		return nil
	}

	s.log.Info("starting job scheduler", "jobs_count", len(s.jobs))

	for _, job := range s.jobs {
		go s.runJob(ctx, job)
	}

	return nil
}

// runJob запускает отдельную джобу в цикле
func (s *Scheduler) runJob(ctx context.Context, job jobs.Job) {
	jobName := job.Name()
	for {
		now := time.Now()
		timer := time.NewTimer(job.NextRun(now).Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.log.Info("job stopped by context", "job_name", jobName)
			return
		case <-timer.C:
			attemptErrors, err := s.executeJobWithRetry(ctx, job)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				s.log.Error("job failed after all retries",
					"job_name", jobName,
					"error", err,
					"attempt_errors", joinAttemptErrors(attemptErrors, "; "),
				)
				s.sendAlert(ctx, jobName, attemptErrors)
			} else {
				s.log.Info("job executed successfully", "job_name", jobName)
			}
		}
	}
}

// jobAttemptError ошибка конкретной попытки выполнения джобы
type jobAttemptError struct {
	attempt int
	err     error
}

// executeJobWithRetry выполняет джобу с повторами при ошибках.
// Возвращает ошибки всех попыток и финальную ошибку
func (s *Scheduler) executeJobWithRetry(ctx context.Context, job jobs.Job) ([]jobAttemptError, error) {
	jobName := job.Name()
	var attemptErrors []jobAttemptError

	// Первая попытка
	err := job.Run(ctx)
	if err == nil {
		return nil, nil
	}
	attemptErrors = append(attemptErrors, jobAttemptError{attempt: 1, err: err})
	s.log.Warn("job execution failed, will retry",
		"job_name", jobName,
		"attempt", 1,
		"retries_remaining", len(s.retryDelays),
		"error", err,
	)

	for i, retryDelay := range s.retryDelays {
		attemptNum := i + 2
		select {
		case <-ctx.Done():
			return attemptErrors, ctx.Err()
		case <-time.After(retryDelay):
		}

		err := job.Run(ctx)
		if err == nil {
			return nil, nil
		}
		attemptErrors = append(attemptErrors, jobAttemptError{attempt: attemptNum, err: err})
		s.log.Warn("job retry failed",
			"job_name", jobName,
			"attempt", attemptNum,
			"retries_remaining", len(s.retryDelays)-i-1,
			"error", err,
		)
	}

	return attemptErrors, fmt.Errorf("all retry attempts failed (total attempts: %d)", len(attemptErrors))
}

func joinAttemptErrors(attemptErrors []jobAttemptError, sep string) string {
	lines := make([]string, 0, len(attemptErrors))
	for _, attemptErr := range attemptErrors {
		lines = append(lines, fmt.Sprintf("Попытка %d: %s", attemptErr.attempt, attemptErr.err.Error()))
	}
	return strings.Join(lines, sep)
}

// sendAlert алертит на финальную ошибку после ретраев
func (s *Scheduler) sendAlert(ctx context.Context, jobName string, attemptErrors []jobAttemptError) {
	if s.alerterService == nil {
		return
	}

	var message strings.Builder
	message.WriteString("⚠️ Финальная ошибка планировщика, ретраи исчерпаны\n\n")
	message.WriteString(fmt.Sprintf("Джоба: %s\n\n", jobName))
	message.WriteString("Ошибки попыток:\n")
	message.WriteString(joinAttemptErrors(attemptErrors, "\n"))

	if alertErr := s.alerterService.SendAlert(ctx, message.String()); alertErr != nil {
		s.log.Warn("failed to send job failure alert",
			"job_name", jobName,
			"error", alertErr,
		)
	}
}
