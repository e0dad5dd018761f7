package pipelog

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector собирает Prometheus-метрики эмиссии логов и запусков
// пайплайнов и задач. Метрики регистрируются в собственном registry,
// который вызывающий код отдаёт своему exporter-у.
type Collector struct {
	registry *prometheus.Registry

	records      *prometheus.CounterVec
	pipelineRuns *prometheus.CounterVec
	jobRuns      *prometheus.CounterVec
}

// NewCollector создаёт Collector с собственным registry.
// Регистрирует метрики:
//   - pipelog_records_total (counter: logger, level)
//   - pipelog_pipeline_runs_total (counter: pipeline, status)
//   - pipelog_job_runs_total (counter: job, status)
func NewCollector() (*Collector, error) {
	registry := prometheus.NewRegistry()

	records := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pipelog",
			Name:      "records_total",
			Help:      "Total number of log records emitted through the facade",
		},
		[]string{"logger", "level"},
	)

	pipelineRuns := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pipelog",
			Name:      "pipeline_runs_total",
			Help:      "Total number of completed pipeline runs by status",
		},
		[]string{"pipeline", "status"},
	)

	jobRuns := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pipelog",
			Name:      "job_runs_total",
			Help:      "Total number of completed job runs by status",
		},
		[]string{"job", "status"},
	)

	// Регистрируем все метрики атомарно.
	// Используем Register вместо MustRegister для избежания panic.
	collectors := []prometheus.Collector{records, pipelineRuns, jobRuns}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("регистрация метрики: %w", err)
		}
	}

	return &Collector{
		registry:     registry,
		records:      records,
		pipelineRuns: pipelineRuns,
		jobRuns:      jobRuns,
	}, nil
}

// Registry возвращает registry с метриками коллектора.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordEmitted учитывает одну запись лога.
func (c *Collector) RecordEmitted(logger string, level slog.Level) {
	c.records.WithLabelValues(logger, levelName(level)).Inc()
}

// RecordPipelineRun учитывает завершение пайплайна.
func (c *Collector) RecordPipelineRun(pipeline, status string) {
	c.pipelineRuns.WithLabelValues(pipeline, status).Inc()
}

// RecordJobRun учитывает завершение задачи.
func (c *Collector) RecordJobRun(job, status string) {
	c.jobRuns.WithLabelValues(job, status).Inc()
}
