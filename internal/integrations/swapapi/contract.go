package swapapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics учёт вызовов upstream
type Metrics interface {
	ObserveUpstream(operation, outcome string, d time.Duration)
}
