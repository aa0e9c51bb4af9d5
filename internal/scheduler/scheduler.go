package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Job — периодическая задача
type Job interface {
	RunOnce(ctx context.Context) error
}

type Scheduler struct {
	name     string
	job      Job
	interval time.Duration
	logger   *slog.Logger
}

// NewScheduler — конструктор планировщика; interval <= 0 заменяется на минуту
func NewScheduler(name string, job Job, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{
		name:     name,
		job:      job,
		interval: interval,
		logger:   logger.With(slog.String("job", name)),
	}
}

// Start — запускает периодическое выполнение задачи до остановки контекста
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// первый запуск сразу
	s.runOnce(ctx)

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	started := time.Now()
	if err := s.job.RunOnce(ctx); err != nil {
		s.logger.Error("tick: job failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Debug("tick: completed", slog.Duration("duration", time.Since(started)))
}
