package purge_wizards

import "errors"

var (
	// ErrInvalidSchedule выражение расписания не разобрано cron
	ErrInvalidSchedule = errors.New("invalid cleanup schedule")
)
