package subscriptions

import "github.com/m04kA/SMC-SwapPortal/internal/domain"

// DefaultHistoryPageSize размер страницы истории замен
const DefaultHistoryPageSize = 10

// MaxHistoryPageSize верхняя граница размера страницы истории
const MaxHistoryPageSize = 50

// Subscription подписка с вычисленными признаками
type Subscription struct {
	domain.SubscriptionInfo
	Usable         bool
	RemainingSwaps *int
}

// MineResponse подписки водителя
type MineResponse struct {
	Subscriptions []Subscription
	Notice        string
}

// HistoryRequest страница истории замен
type HistoryRequest struct {
	Page     int
	PageSize int
}
