package profileservice

import "errors"

var (
	// ErrClientNotFound возвращается, когда профиль клиента не найден
	ErrClientNotFound = errors.New("client profile not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("profileservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("profileservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что ProfileService недоступен и запись продолжается
	// без обогащения контактными данными
	ErrServiceDegraded = errors.New("profileservice unavailable: graceful degradation applied")
)
