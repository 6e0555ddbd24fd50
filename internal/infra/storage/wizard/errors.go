package wizard

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия визарда не найдена или истекла
	ErrSessionNotFound = errors.New("wizard.repository: session not found")

	// ErrSessionExists возвращается при повторном создании сессии с тем же id
	ErrSessionExists = errors.New("wizard.repository: session already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("wizard.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("wizard.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("wizard.repository: failed to scan row")
)
