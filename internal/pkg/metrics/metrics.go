package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 提示词生成相关的 Prometheus 指标
type Metrics struct {
	llmRequests  *prometheus.CounterVec
	llmDuration  *prometheus.HistogramVec
	parseResults *prometheus.CounterVec
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default 返回注册在全局 Registry 上的指标实例（只注册一次）
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = MustNew(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

// MustNew 在指定 Registerer 上创建指标，注册失败直接 panic
func MustNew(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		llmRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "promptgen",
				Name:      "llm_requests_total",
				Help:      "Number of chat model calls by operation and status.",
			},
			[]string{"operation", "status"},
		),
		llmDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "promptgen",
				Name:      "llm_request_duration_seconds",
				Help:      "Latency of chat model calls.",
				Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
			},
			[]string{"operation"},
		),
		parseResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "promptgen",
				Name:      "parse_results_total",
				Help:      "Model response parse outcomes by parser and path taken.",
			},
			[]string{"parser", "source"},
		),
	}

	reg.MustRegister(m.llmRequests, m.llmDuration, m.parseResults)
	return m
}

// ObserveLLMCall 记录一次模型调用
func (m *Metrics) ObserveLLMCall(operation string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.llmRequests.WithLabelValues(operation, status).Inc()
	m.llmDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveParse 记录一次响应解析所走的路径
func (m *Metrics) ObserveParse(parser, source string) {
	if m == nil {
		return
	}
	m.parseResults.WithLabelValues(parser, source).Inc()
}
