// Package main содержит smoke-проверку модуля pipelog.
// Прогоняет фиктивный пайплайн через фасад PipelineLogger, чтобы вживую
// проверить ротацию, формат строк и дублирование вывода файл+консоль.
// Конфигурация берётся из переменных окружения PIPELOG_*.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Kargones/pipelog"
)

func main() {
	cfg, err := pipelog.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Не удалось загрузить конфигурацию логирования: %v\n", err)
		os.Exit(5)
	}
	if cfg.FilePath == pipelog.DefaultFilePath {
		// Без явного PIPELOG_FILE пишем в датированный файл, как это
		// делают batch-запуски
		cfg.FilePath = pipelog.DatedLogFile("logs", "smoke", time.Now())
	}

	pl, err := pipelog.NewPipelineLoggerFromConfig("pipelog-smoke", cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Не удалось настроить логгер: %v\n", err)
		os.Exit(6)
	}

	collector, err := pipelog.NewCollector()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Не удалось создать сборщик метрик: %v\n", err)
		os.Exit(7)
	}
	pl.AttachCollector(collector)

	pl.StartPipeline("SMOKE")

	pl.StartJob("extract")
	pl.Info("Шаг 1: извлечение тестовых данных")
	pl.EndJob("extract", pipelog.Stats{"rows": 3})

	pl.StartJob("transform")
	pl.Warn("Шаг 2: часть записей пропущена")
	err = fmt.Errorf("чтение источника: %w", os.ErrNotExist)
	pl.ErrorErr("Шаг 2: источник недоступен, продолжаем с кэшем", err)
	pl.EndJob("transform", pipelog.Stats{"rows": 2, "skipped": 1})

	pl.EndPipeline("SMOKE", pipelog.Stats{"jobs": 2, "status": pipelog.StatusCompleted})

	families, err := collector.Registry().Gather()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Не удалось прочитать метрики: %v\n", err)
		os.Exit(8)
	}
	pl.Info(fmt.Sprintf("Собрано семейств метрик: %d", len(families)))
}
