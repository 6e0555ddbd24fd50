package wizards

import "errors"

var (
	// ErrNotFound сессия не найдена, истекла или другого типа
	ErrNotFound = errors.New("wizard session not found")

	// ErrForbidden сессия принадлежит другому пользователю
	ErrForbidden = errors.New("wizard session belongs to another user")

	// ErrCorruptState сохранённое состояние не читается
	ErrCorruptState = errors.New("wizard session state is corrupt")
)
