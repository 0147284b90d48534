// Package metrics 把生成和解析的结果导出到 Prometheus
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/leon37/GolfFortune/internal/model"
)

const namespace = "golffortune"

// Recorder 同时实现 extract.Observer 和 service.Telemetry
type Recorder struct {
	sections    *prometheus.CounterVec
	generations *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	fallbacks   *prometheus.CounterVec
}

// NewRecorder 注册指标，reg 为 nil 时使用默认注册表
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	sections, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "section_parse_total",
		Help:      "Narrative sections parsed from generated text, by template, field and result.",
	}, []string{"template", "field", "result"}))
	if err != nil {
		return nil, err
	}
	generations, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generation_total",
		Help:      "Generation calls by backend, mode and outcome.",
	}, []string{"backend", "mode", "outcome"}))
	if err != nil {
		return nil, err
	}
	latency, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Latency of generation calls.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120, 300},
	}, []string{"backend", "mode"}))
	if err != nil {
		return nil, err
	}
	fallbacks, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fallback_total",
		Help:      "Fortunes answered with the default record, by reason.",
	}, []string{"reason"}))
	if err != nil {
		return nil, err
	}

	return &Recorder{
		sections:    sections,
		generations: generations,
		latency:     latency,
		fallbacks:   fallbacks,
	}, nil
}

// register 重复注册时复用已有的 collector
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, fmt.Errorf("register metric: %w", err)
	}
	return c, nil
}

func (r *Recorder) SectionMatched(version string, field model.Field, matched bool) {
	if r == nil {
		return
	}
	result := "matched"
	if !matched {
		result = "default"
	}
	r.sections.WithLabelValues(version, string(field), result).Inc()
}

func (r *Recorder) GenerationFinished(backend, mode, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.generations.WithLabelValues(backend, mode, outcome).Inc()
	r.latency.WithLabelValues(backend, mode).Observe(d.Seconds())
}

func (r *Recorder) FallbackUsed(reason string) {
	if r == nil {
		return
	}
	r.fallbacks.WithLabelValues(reason).Inc()
}
