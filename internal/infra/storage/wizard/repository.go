package wizard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SwapPortal/pkg/txmanager"
)

const (
	tableName = "wizard_sessions"

	// pgUniqueViolation код ошибки PostgreSQL для нарушения уникальности
	pgUniqueViolation = "23505"
)

var columns = []string{
	"id",
	"kind",
	"owner_id",
	"state",
	"version",
	"created_at",
	"updated_at",
	"expires_at",
}

// Repository репозиторий сессий визардов в PostgreSQL
type Repository struct {
	db        DBExecutor
	txManager TransactionManager
	now       func() time.Time
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor, txManager TransactionManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
		now:       time.Now,
	}
}

// Create сохраняет новую сессию
func (r *Repository) Create(ctx context.Context, rec *domain.WizardRecord) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(columns...).
		Values(
			rec.ID,
			rec.Kind,
			rec.OwnerID,
			string(rec.State), // jsonb строкой: []byte lib/pq передаёт как bytea
			rec.Version,
			rec.CreatedAt,
			rec.UpdatedAt,
			rec.ExpiresAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return ErrSessionExists
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// Get возвращает живую (не истёкшую) сессию
func (r *Repository) Get(ctx context.Context, id string) (*domain.WizardRecord, error) {
	return r.get(ctx, id, false)
}

// Update читает сессию под блокировкой строки, применяет fn и сохраняет результат.
// Ошибка fn отменяет запись.
func (r *Repository) Update(ctx context.Context, id string, fn func(rec *domain.WizardRecord) error) (*domain.WizardRecord, error) {
	var updated *domain.WizardRecord

	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Блокируем строку до конца транзакции
		rec, err := r.get(ctx, id, true)
		if err != nil {
			return err
		}

		// 2. Применяем изменение
		if err := fn(rec); err != nil {
			return err
		}

		// 3. Сохраняем с новой версией
		rec.Version++
		rec.UpdatedAt = r.now()

		query, args, err := psqlbuilder.Update(tableName).
			Set("state", string(rec.State)).
			Set("version", rec.Version).
			Set("updated_at", rec.UpdatedAt).
			Set("expires_at", rec.ExpiresAt).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
		}

		executor := txmanager.GetExecutor(ctx, r.db)
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
		}

		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete удаляет сессию; удаление отсутствующей сессии не ошибка
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// DeleteExpired удаляет сессии с истёкшим сроком и возвращает их количество
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - rows affected: %v", ErrExecQuery, err)
	}
	return affected, nil
}

func (r *Repository) get(ctx context.Context, id string, forUpdate bool) (*domain.WizardRecord, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Gt{"expires_at": r.now()})

	// Внутри транзакции блокируем строку для read-modify-write
	if forUpdate && txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: get - build select query: %v", ErrBuildQuery, err)
	}

	var rec domain.WizardRecord
	var kind string
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rec.ID,
		&kind,
		&rec.OwnerID,
		&rec.State,
		&rec.Version,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get - scan session: %v", ErrScanRow, err)
	}

	rec.Kind = domain.WizardKind(kind)
	return &rec, nil
}
