// Package purge_wizards periodically removes wizard sessions that outlived their TTL.
// Abandoned wizards never reach the backend, so dropping them locally is the only cleanup.
package purge_wizards

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

const runTimeout = 30 * time.Second

// Job очистка просроченных сессий по расписанию
type Job struct {
	store        ExpiredDeleter
	cron         *cron.Cron
	timeProvider TimeProvider
	logger       Logger
}

// NewJob регистрирует очистку по выражению schedule (например, "@every 5m")
func NewJob(store ExpiredDeleter, schedule string, logger Logger) (*Job, error) {
	j := &Job{
		store:        store,
		cron:         cron.New(),
		timeProvider: RealTimeProvider{},
		logger:       logger,
	}
	if _, err := j.cron.AddFunc(schedule, j.run); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, schedule, err)
	}
	return j, nil
}

// WithTimeProvider устанавливает кастомный провайдер времени (для тестов)
func (j *Job) WithTimeProvider(tp TimeProvider) *Job {
	j.timeProvider = tp
	return j
}

// Start запускает планировщик в фоне
func (j *Job) Start() {
	j.cron.Start()
}

// Stop останавливает планировщик и ждёт завершения текущего запуска
func (j *Job) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
		j.logger.Warn("PurgeWizards.Stop: %v", ctx.Err())
	}
}

// RunOnce удаляет просроченные сессии и возвращает их количество
func (j *Job) RunOnce(ctx context.Context) (int64, error) {
	removed, err := j.store.DeleteExpired(ctx, j.timeProvider.Now())
	if err != nil {
		j.logger.Error("PurgeWizards.RunOnce: %v", err)
		return 0, err
	}
	if removed > 0 {
		j.logger.Info("PurgeWizards.RunOnce: removed %d expired wizard session(s)", removed)
	}
	return removed, nil
}

func (j *Job) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()
	_, _ = j.RunOnce(ctx)
}
