package pipelog

// NopLogger — реализация Logger, которая ничего не делает.
// Используется в тестах для отключения логирования.
type NopLogger struct{}

// NewNopLogger создаёт Logger, который игнорирует все сообщения.
func NewNopLogger() Logger {
	return &NopLogger{}
}

// Debug ничего не делает.
func (n *NopLogger) Debug(_ string, _ ...any) {}

// Info ничего не делает.
func (n *NopLogger) Info(_ string, _ ...any) {}

// Warn ничего не делает.
func (n *NopLogger) Warn(_ string, _ ...any) {}

// Error ничего не делает.
func (n *NopLogger) Error(_ string, _ ...any) {}

// Critical ничего не делает.
func (n *NopLogger) Critical(_ string, _ ...any) {}

// With возвращает тот же NopLogger: атрибуты всё равно игнорируются.
func (n *NopLogger) With(_ ...any) Logger {
	return n
}
