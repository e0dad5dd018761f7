package pipelog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Реестр настроенных логгеров по имени. Повторный Setup с тем же именем
// возвращает уже настроенный экземпляр и не добавляет новых приёмников,
// иначе каждая запись дублировалась бы в выводе. Мьютекс закрывает гонку
// check-then-create при первом конкурентном создании одного имени.
var (
	registryMu sync.Mutex
	registry   = make(map[string]Logger)
)

// Setup возвращает именованный логгер с двумя приёмниками: файл с ротацией
// по размеру и stdout. Оба приёмника используют один формат строки:
//
//	2006-01-02 15:04:05 - имя - УРОВЕНЬ - сообщение
//
// Родительские директории logFile создаются автоматически; ошибка их
// создания возвращается вызывающему. Повторный вызов с тем же именем
// возвращает первый настроенный экземпляр без изменений, даже если путь
// к файлу или уровень отличаются.
func Setup(name, logFile string, level slog.Level) (Logger, error) {
	cfg := DefaultConfig()
	cfg.FilePath = logFile
	return setup(name, cfg, level)
}

// SetupFromConfig аналогичен Setup, но берёт путь к файлу, параметры
// ротации и уровень из конфигурации.
func SetupFromConfig(name string, cfg Config) (Logger, error) {
	return setup(name, cfg, ParseLevel(cfg.Level))
}

func setup(name string, cfg Config, level slog.Level) (Logger, error) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if l, ok := registry[name]; ok {
		return l, nil
	}

	w, err := newSinkWriter(cfg)
	if err != nil {
		return nil, err
	}

	l := NewSlogAdapter(slog.New(newLineHandler(w, name, level)))
	registry[name] = l
	return l, nil
}

// NewLoggerWithWriter создаёт логгер с указанным writer, минуя реестр
// и файловый приёмник. Используется для тестирования и гибкой настройки.
//
// Для production использования предпочтительнее Setup(),
// который настраивает файл с ротацией и консоль.
func NewLoggerWithWriter(name string, level slog.Level, w io.Writer) Logger {
	return NewSlogAdapter(slog.New(newLineHandler(w, name, level)))
}

// newSinkWriter собирает writer из файлового приёмника с ротацией и,
// если включена консоль, stdout. Директория файла создаётся при
// необходимости; ошибка создания возвращается вызывающему.
func newSinkWriter(cfg Config) (io.Writer, error) {
	if cfg.FilePath == "" {
		// Пустой путь — деградируем до консоли, чтобы не терять логи молча
		_, _ = os.Stderr.WriteString("WARNING: pipelog: путь к файлу лога пустой, вывод только в stdout\n") //nolint:errcheck // bootstrap stderr
		return os.Stdout, nil
	}

	dir := filepath.Dir(cfg.FilePath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("создание директории логов %q: %w", dir, err)
		}
	}

	fw := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize, // MB
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge, // days
		Compress:   cfg.Compress,
	}

	if !cfg.Console {
		return fw, nil
	}
	return io.MultiWriter(fw, os.Stdout), nil
}

// resetRegistry очищает реестр логгеров. Только для тестов: в процессе
// реестр живёт от старта до завершения.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Logger)
}
