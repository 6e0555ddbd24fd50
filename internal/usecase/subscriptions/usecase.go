package subscriptions

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
)

const msgSubscriptionsUnavailable = "Could not load your subscriptions. Please try again."

// UseCase подписки водителя и история замен
type UseCase struct {
	client SubscriptionClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client SubscriptionClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Mine подписки водителя; при ошибке backend пустой список и сообщение
func (uc *UseCase) Mine(ctx context.Context) (*MineResponse, error) {
	subs, err := uc.client.ListMySubscriptions(ctx)
	if err != nil {
		if errors.Is(err, swapapi.ErrUnauthorized) {
			return nil, err
		}
		uc.logger.Error("Subscriptions.Mine: failed to list: %v", err)
		return &MineResponse{
			Subscriptions: []Subscription{},
			Notice:        swapapi.UserMessage(err, msgSubscriptionsUnavailable),
		}, nil
	}

	resp := &MineResponse{Subscriptions: make([]Subscription, 0, len(subs))}
	for i := range subs {
		resp.Subscriptions = append(resp.Subscriptions, Subscription{
			SubscriptionInfo: subs[i],
			Usable:           subs[i].IsUsable(),
			RemainingSwaps:   subs[i].RemainingSwaps(),
		})
	}
	return resp, nil
}

// Cancel отменяет активную подписку водителя
func (uc *UseCase) Cancel(ctx context.Context) error {
	// 1. Проверяем, что есть что отменять
	subs, err := uc.client.ListMySubscriptions(ctx)
	if err != nil {
		uc.logger.Error("Subscriptions.Cancel: failed to list: %v", err)
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	active := false
	for i := range subs {
		if subs[i].IsActive {
			active = true
			break
		}
	}
	if !active {
		return ErrNoActiveSubscription
	}

	// 2. Запрос в backend
	if err := uc.client.CancelMySubscription(ctx); err != nil {
		uc.logger.Warn("Subscriptions.Cancel: %v", err)
		return fmt.Errorf("%w: %w", ErrCancelFailed, err)
	}

	uc.logger.Info("Subscriptions.Cancel: subscription cancelled")
	return nil
}

// History страница истории замен; пагинацию выполняет backend
func (uc *UseCase) History(ctx context.Context, req *HistoryRequest) (*swapapi.SwapHistoryPage, error) {
	// 1. Валидация входных данных
	if err := validateHistory(req); err != nil {
		return nil, err
	}

	// 2. Запрос в backend
	page, err := uc.client.SwapHistory(ctx, req.Page, req.PageSize)
	if err != nil {
		uc.logger.Error("Subscriptions.History: page=%d: %v", req.Page, err)
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return page, nil
}
