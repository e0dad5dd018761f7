package pipelog

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
)

// Разделители для записей о старте и завершении пайплайнов и задач.
const (
	pipelineBanner = "===================="
	jobBanner      = "----------"
)

// Статусы запусков для метрик.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// PipelineLogger — фасад над Logger со стандартизованными записями
// для ETL-пайплайна: баннеры старта и завершения пайплайна и задач,
// статистика, проброс обычных уровней.
//
// Несколько экземпляров с одним именем делят один базовый логгер и
// его приёмники через реестр фабрики.
type PipelineLogger struct {
	name      string
	logger    Logger
	collector *Collector
}

// NewPipelineLogger создаёт фасад, настраивая именованный логгер через
// Setup: файл с ротацией + консоль, уровень level.
func NewPipelineLogger(name, logFile string, level slog.Level) (*PipelineLogger, error) {
	l, err := Setup(name, logFile, level)
	if err != nil {
		return nil, err
	}
	return &PipelineLogger{name: name, logger: l}, nil
}

// NewPipelineLoggerFromConfig создаёт фасад по конфигурации.
func NewPipelineLoggerFromConfig(name string, cfg Config) (*PipelineLogger, error) {
	l, err := SetupFromConfig(name, cfg)
	if err != nil {
		return nil, err
	}
	return &PipelineLogger{name: name, logger: l}, nil
}

// NewPipelineLoggerWith оборачивает уже созданный Logger без обращения
// к реестру. Удобно в тестах и там, где логгер собирается вручную.
func NewPipelineLoggerWith(name string, l Logger) *PipelineLogger {
	if l == nil {
		l = NewNopLogger()
	}
	return &PipelineLogger{name: name, logger: l}
}

// AttachCollector подключает сборщик Prometheus-метрик. nil отключает сбор.
func (p *PipelineLogger) AttachCollector(c *Collector) {
	p.collector = c
}

// Logger возвращает базовый логгер фасада.
func (p *PipelineLogger) Logger() Logger {
	return p.logger
}

// StartPipeline записывает баннер старта пайплайна:
//
//	==================== STARTING {name} PIPELINE ====================
func (p *PipelineLogger) StartPipeline(pipelineName string) {
	p.infof("%s STARTING %s PIPELINE %s", pipelineBanner, pipelineName, pipelineBanner)
}

// EndPipeline записывает баннер завершения пайплайна. Если статистика
// непуста, перед баннером записывается строка "Pipeline statistics: ...".
func (p *PipelineLogger) EndPipeline(pipelineName string, stats Stats) {
	if len(stats) > 0 {
		p.infof("Pipeline statistics: %s", stats)
	}
	p.infof("%s COMPLETED %s PIPELINE %s", pipelineBanner, pipelineName, pipelineBanner)
	if p.collector != nil {
		p.collector.RecordPipelineRun(pipelineName, stats.status(StatusCompleted))
	}
}

// StartJob записывает баннер старта задачи:
//
//	---------- Starting job: {name} ----------
func (p *PipelineLogger) StartJob(jobName string) {
	p.infof("%s Starting job: %s %s", jobBanner, jobName, jobBanner)
}

// EndJob записывает баннер завершения задачи. Если статистика непуста,
// перед баннером записывается строка "Job statistics: ...".
func (p *PipelineLogger) EndJob(jobName string, stats Stats) {
	if len(stats) > 0 {
		p.infof("Job statistics: %s", stats)
	}
	p.infof("%s Completed job: %s %s", jobBanner, jobName, jobBanner)
	if p.collector != nil {
		p.collector.RecordJobRun(jobName, stats.status(StatusCompleted))
	}
}

// Info записывает сообщение уровня INFO.
func (p *PipelineLogger) Info(message string) {
	p.logger.Info(message)
	p.count(LevelInfo)
}

// Warn записывает сообщение уровня WARNING.
func (p *PipelineLogger) Warn(message string) {
	p.logger.Warn(message)
	p.count(LevelWarning)
}

// Error записывает сообщение уровня ERROR.
func (p *PipelineLogger) Error(message string) {
	p.logger.Error(message)
	p.count(LevelError)
}

// ErrorErr записывает сообщение уровня ERROR с цепочкой ошибки в
// атрибуте error и стеком вызовов места логирования в атрибуте stack.
// При nil err деградирует до обычной записи без трассировки, ошибок
// не порождает.
func (p *PipelineLogger) ErrorErr(message string, err error) {
	if err == nil {
		p.Error(message)
		return
	}
	p.logger.Error(message,
		"error", errorChain(err),
		"stack", string(debug.Stack()),
	)
	p.count(LevelError)
}

// Exception — синоним ErrorErr, сохранён как привычное имя для записи
// ошибки с трассировкой в обработчике сбоя пайплайна.
func (p *PipelineLogger) Exception(message string, err error) {
	p.ErrorErr(message, err)
}

// Critical записывает сообщение уровня CRITICAL.
func (p *PipelineLogger) Critical(message string) {
	p.logger.Critical(message)
	p.count(LevelCritical)
}

// infof записывает отформатированное INFO-сообщение и учитывает его в метриках.
func (p *PipelineLogger) infof(format string, args ...any) {
	p.logger.Info(fmt.Sprintf(format, args...))
	p.count(LevelInfo)
}

// count учитывает запись в метриках, если подключён Collector.
func (p *PipelineLogger) count(level slog.Level) {
	if p.collector != nil {
		p.collector.RecordEmitted(p.name, level)
	}
}

// errorChain разворачивает цепочку ошибки от внешней к корневой
// и склеивает её в одну строку: "внешняя -> ... -> корневая".
func errorChain(err error) string {
	var parts []string
	for e := err; e != nil; e = errors.Unwrap(e) {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, " -> ")
}
