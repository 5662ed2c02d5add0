package catalog

import "errors"

var (
	// ErrServiceNotFound услуга не найдена
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrTrainerNotFound тренер не найден
	ErrTrainerNotFound = errors.New("catalog.repository: trainer not found")

	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow ошибка сканирования строки результата
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
