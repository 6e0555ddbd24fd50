package group_requests

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
)

const (
	sourceBatteryRequests = "battery_requests"
	sourceStockRequests   = "stock_requests"
)

// UseCase восстановление и отправка партий заявок на пополнение
type UseCase struct {
	client  RestockClient
	cfg     Config
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client RestockClient, cfg Config, metrics Metrics, logger Logger) *UseCase {
	defaults := DefaultConfig()
	if cfg.BatteryRequestWindow <= 0 {
		cfg.BatteryRequestWindow = defaults.BatteryRequestWindow
	}
	if cfg.StockRequestWindow <= 0 {
		cfg.StockRequestWindow = defaults.StockRequestWindow
	}
	if cfg.Strategy == "" {
		cfg.Strategy = defaults.Strategy
	}
	return &UseCase{
		client:  client,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
	}
}

// BatteryBatches партии admin -> staff
func (uc *UseCase) BatteryBatches(ctx context.Context) ([]Batch[domain.BatteryRequest], error) {
	rows, err := uc.client.ListBatteryRequests(ctx)
	if err != nil {
		uc.logger.Error("GroupRequests.BatteryBatches: failed to list requests: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrListFailed, err)
	}

	batches := Group(rows, BatteryRequestAttrs, uc.cfg.BatteryRequestWindow, uc.cfg.Strategy)
	observeBatches(uc.metrics, sourceBatteryRequests, batches)
	uc.logger.Info("GroupRequests.BatteryBatches: %d rows -> %d batches", len(rows), len(batches))
	return batches, nil
}

// StockBatches партии staff -> admin
func (uc *UseCase) StockBatches(ctx context.Context) ([]Batch[domain.StockRequest], error) {
	rows, err := uc.client.ListStockRequests(ctx)
	if err != nil {
		uc.logger.Error("GroupRequests.StockBatches: failed to list requests: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrListFailed, err)
	}

	batches := Group(rows, StockRequestAttrs, uc.cfg.StockRequestWindow, uc.cfg.Strategy)
	observeBatches(uc.metrics, sourceStockRequests, batches)
	uc.logger.Info("GroupRequests.StockBatches: %d rows -> %d batches", len(rows), len(batches))
	return batches, nil
}

// SubmitBatteryBatch отправляет партию admin -> staff построчно
func (uc *UseCase) SubmitBatteryBatch(ctx context.Context, req *SubmitRequest) (*SubmitResult, error) {
	return uc.submit(ctx, "SubmitBatteryBatch", req, func(line swapapi.RestockLineRequest) error {
		line.Note = req.Comment
		_, err := uc.client.CreateBatteryRequest(ctx, line)
		return err
	})
}

// SubmitStockBatch отправляет партию staff -> admin построчно
func (uc *UseCase) SubmitStockBatch(ctx context.Context, req *SubmitRequest) (*SubmitResult, error) {
	return uc.submit(ctx, "SubmitStockBatch", req, func(line swapapi.RestockLineRequest) error {
		line.Reason = req.Comment
		_, err := uc.client.CreateStockRequest(ctx, line)
		return err
	})
}

func (uc *UseCase) submit(ctx context.Context, op string, req *SubmitRequest, create func(swapapi.RestockLineRequest) error) (*SubmitResult, error) {
	// 1. Валидация партии
	if err := validateSubmit(req); err != nil {
		uc.logger.Warn("GroupRequests.%s: validation failed: %v", op, err)
		return nil, err
	}

	// 2. Строки отправляются подряд, чтобы попасть в одно окно группировки
	result := &SubmitResult{Total: len(req.Lines)}
	for _, line := range req.Lines {
		err := create(swapapi.RestockLineRequest{
			StationID:      req.StationID,
			BatteryModelID: line.BatteryModelID,
			Quantity:       line.Quantity,
		})
		if err != nil {
			uc.logger.Error("GroupRequests.%s: line %s failed after %d/%d created: %v",
				op, line.BatteryModelID, result.Created, result.Total, err)
			if result.Created == 0 {
				return nil, err
			}
			return result, fmt.Errorf("%w: %d of %d lines created: %w", ErrPartiallySubmitted, result.Created, result.Total, err)
		}
		result.Created++
	}

	uc.logger.Info("GroupRequests.%s: station=%s, lines=%d", op, req.StationID, result.Created)
	return result, nil
}

func observeBatches[T any](m Metrics, source string, batches []Batch[T]) {
	if m == nil {
		return
	}
	for _, b := range batches {
		m.ObserveBatch(source, len(b.Items))
	}
}
