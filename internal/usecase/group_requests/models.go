package group_requests

import (
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// Config окна и стратегия группировки
type Config struct {
	BatteryRequestWindow time.Duration
	StockRequestWindow   time.Duration
	Strategy             Strategy
}

// DefaultConfig окна 3 и 5 секунд, сравнение с соседней строкой
func DefaultConfig() Config {
	return Config{
		BatteryRequestWindow: domain.BatteryRequestGroupingWindow,
		StockRequestWindow:   domain.StockRequestGroupingWindow,
		Strategy:             StrategyAdjacent,
	}
}

// SubmitRequest одна партия: N строк в одну станцию
type SubmitRequest struct {
	StationID string
	Lines     []domain.RestockLine
	Comment   string
}

// SubmitResult итог отправки партии
type SubmitResult struct {
	Created int
	Total   int
}
