package handlers

// Logger логгер хендлеров, printf-стиль как у pkg/logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
