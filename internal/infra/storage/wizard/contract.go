package wizard

import (
	"context"

	"github.com/m04kA/SMC-SwapPortal/pkg/txmanager"
)

// DBExecutor пул соединений или транзакция из контекста
type DBExecutor = txmanager.DBExecutor

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
