package pipelog

import "log/slog"

// Уровни логирования пайплайна. Порядок строгий:
// DEBUG < INFO < WARNING < ERROR < CRITICAL.
//
// CRITICAL не существует в slog из коробки, поэтому определён как
// кастомный уровень выше Error (аналогично trace/fatal уровням в slog).
const (
	LevelDebug    = slog.LevelDebug
	LevelInfo     = slog.LevelInfo
	LevelWarning  = slog.LevelWarn
	LevelError    = slog.LevelError
	LevelCritical = slog.Level(12)
)

// Строковые значения уровней для конфигурации.
const (
	levelNameDebug    = "debug"
	levelNameInfo     = "info"
	levelNameWarning  = "warning"
	levelNameError    = "error"
	levelNameCritical = "critical"
)

// levelNames задаёт отображаемые имена уровней в строке лога.
// slog по умолчанию печатает WARN и "ERROR+4", здесь нужны
// полные имена WARNING и CRITICAL.
var levelNames = map[slog.Level]string{
	LevelDebug:    "DEBUG",
	LevelInfo:     "INFO",
	LevelWarning:  "WARNING",
	LevelError:    "ERROR",
	LevelCritical: "CRITICAL",
}

// ParseLevel конвертирует строковый уровень из конфигурации в slog.Level.
// При неизвестном значении возвращает LevelInfo.
func ParseLevel(level string) slog.Level {
	switch level {
	case levelNameDebug:
		return LevelDebug
	case levelNameInfo:
		return LevelInfo
	case levelNameWarning:
		return LevelWarning
	case levelNameError:
		return LevelError
	case levelNameCritical:
		return LevelCritical
	default:
		// Неизвестный уровень → используем info как безопасный default
		return LevelInfo
	}
}

// levelName возвращает отображаемое имя уровня для строки лога.
func levelName(level slog.Level) string {
	if name, ok := levelNames[level]; ok {
		return name
	}
	return level.String()
}
