// Package pipelog предоставляет логирование для batch ETL-пайплайнов:
// фабрику именованных логгеров с двумя приёмниками (файл с ротацией
// по размеру и консоль) и фасад PipelineLogger с методами для
// стандартизованных записей о запуске и завершении пайплайнов и задач.
package pipelog

import (
	"context"
	"log/slog"
)

// Logger определяет интерфейс для логирования пайплайна.
// Реализации: SlogAdapter (производственная) и NopLogger (для тестов).
//
// Все методы принимают сообщение и опциональные key-value пары:
//
//	logger.Info("задача завершена", "job", name, "rows", 150)
type Logger interface {
	// Debug записывает сообщение уровня DEBUG.
	Debug(msg string, args ...any)

	// Info записывает сообщение уровня INFO.
	Info(msg string, args ...any)

	// Warn записывает сообщение уровня WARNING.
	Warn(msg string, args ...any)

	// Error записывает сообщение уровня ERROR.
	Error(msg string, args ...any)

	// Critical записывает сообщение уровня CRITICAL.
	Critical(msg string, args ...any)

	// With возвращает новый Logger с добавленными атрибутами.
	// Атрибуты будут включены во все последующие записи.
	With(args ...any) Logger
}

// SlogAdapter реализует Logger interface поверх slog из stdlib.
// Это основная production реализация логгера.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter создаёт SlogAdapter с указанным slog.Logger.
// Для создания по имени и пути к файлу используйте Setup().
// При nil logger используется slog.Default() с предупреждением.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
		logger.Warn("pipelog: nil slog.Logger передан в NewSlogAdapter, используется default")
	}
	return &SlogAdapter{logger: logger}
}

// Debug записывает сообщение уровня DEBUG.
func (s *SlogAdapter) Debug(msg string, args ...any) {
	s.logger.Debug(msg, args...)
}

// Info записывает сообщение уровня INFO.
func (s *SlogAdapter) Info(msg string, args ...any) {
	s.logger.Info(msg, args...)
}

// Warn записывает сообщение уровня WARNING.
func (s *SlogAdapter) Warn(msg string, args ...any) {
	s.logger.Warn(msg, args...)
}

// Error записывает сообщение уровня ERROR.
func (s *SlogAdapter) Error(msg string, args ...any) {
	s.logger.Error(msg, args...)
}

// Critical записывает сообщение уровня CRITICAL.
// slog не имеет такого уровня, поэтому используется Log с кастомным уровнем.
func (s *SlogAdapter) Critical(msg string, args ...any) {
	s.logger.Log(context.Background(), LevelCritical, msg, args...)
}

// With возвращает новый Logger с добавленными атрибутами.
func (s *SlogAdapter) With(args ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(args...)}
}
