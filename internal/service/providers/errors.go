package providers

import "errors"

// Ошибки сервиса конфигурации провайдера
var (
	ErrProviderNotFound = errors.New("providers: provider not found")
	// ErrAccessDenied менять настройки может только владелец
	ErrAccessDenied = errors.New("providers: only the owner may change the configuration")
	ErrInvalidInput = errors.New("providers: invalid configuration")
	ErrInternal     = errors.New("providers: internal error")
)
