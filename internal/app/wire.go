// Package app 根据配置组装各层依赖，server 和命令行工具共用
package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/leon37/GolfFortune/internal/config"
	"github.com/leon37/GolfFortune/internal/extract"
	"github.com/leon37/GolfFortune/internal/infrastructure/database"
	"github.com/leon37/GolfFortune/internal/infrastructure/llm"
	"github.com/leon37/GolfFortune/internal/infrastructure/metrics"
	"github.com/leon37/GolfFortune/internal/repository"
	"github.com/leon37/GolfFortune/internal/service"
)

// NewProvider 按名称创建生成后端
func NewProvider(conf *config.Config, backend string) (llm.Provider, error) {
	switch backend {
	case "ollama":
		return llm.NewOllamaClient(conf.Ollama.BaseURL, conf.Ollama.Model, llm.Options{
			Temperature:   conf.Ollama.Temperature,
			TopP:          conf.Ollama.TopP,
			MaxTokens:     conf.Ollama.NumPredict,
			Timeout:       conf.Generation.Timeout,
			StreamTimeout: conf.Generation.StreamTimeout,
		}), nil
	case "openai":
		if conf.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("openai 后端需要 openai.api_key")
		}
		return llm.NewOpenAIClient(conf.OpenAI.APIKey, conf.OpenAI.BaseURL, conf.OpenAI.Model, llm.Options{
			Temperature:   conf.OpenAI.Temperature,
			MaxTokens:     conf.OpenAI.MaxTokens,
			Timeout:       conf.Generation.Timeout,
			StreamTimeout: conf.Generation.StreamTimeout,
		}), nil
	default:
		return nil, fmt.Errorf("未知的生成后端: %q", backend)
	}
}

// NewStore 按 storage.driver 创建保存位置
func NewStore(conf *config.Config) (repository.FortuneStore, error) {
	switch conf.Storage.Driver {
	case "file":
		return repository.NewFileStore(conf.Storage.DataDir), nil
	case "mysql":
		db, err := database.NewMySQLConnection(conf.Storage.DSN, conf.Server.Mode == "debug")
		if err != nil {
			return nil, err
		}
		return repository.NewGormStore(db), nil
	case "none":
		return repository.NewNopStore(), nil
	default:
		return nil, fmt.Errorf("未知的存储驱动: %q", conf.Storage.Driver)
	}
}

// Pipeline 是组装好的运势服务和它用到的存储、监控
type Pipeline struct {
	Service  *service.FortuneService
	Store    repository.FortuneStore
	Recorder *metrics.Recorder
}

// NewPipeline 组装 FortuneService
// reg 为 nil 时不导出 Prometheus 指标
func NewPipeline(conf *config.Config, reg prometheus.Registerer) (*Pipeline, error) {
	provider, err := NewProvider(conf, conf.Generation.Backend)
	if err != nil {
		return nil, err
	}
	streamProvider := provider
	if name := conf.StreamBackendName(); name != conf.Generation.Backend {
		if streamProvider, err = NewProvider(conf, name); err != nil {
			return nil, err
		}
	}

	store, err := NewStore(conf)
	if err != nil {
		return nil, err
	}

	var recorder *metrics.Recorder
	observer := extract.Observer(extract.LogObserver{})
	var telemetry service.Telemetry
	if reg != nil {
		if recorder, err = metrics.NewRecorder(reg); err != nil {
			return nil, err
		}
		observer = extract.Observers(observer, recorder)
		telemetry = recorder
	}

	svc := service.NewFortuneService(provider, streamProvider, store, extract.New(observer), telemetry, conf.Generation.Template)
	return &Pipeline{Service: svc, Store: store, Recorder: recorder}, nil
}
