package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/leon37/GolfFortune/internal/extract"
	"github.com/leon37/GolfFortune/internal/fallback"
	"github.com/leon37/GolfFortune/internal/infrastructure/llm"
	"github.com/leon37/GolfFortune/internal/model"
	"github.com/leon37/GolfFortune/internal/prompt"
	"github.com/leon37/GolfFortune/internal/repository"
	"github.com/leon37/GolfFortune/internal/saju"
)

// PhaseComplete 是 /api/analyze-user 唯一的阶段值
const PhaseComplete = "complete"

// 兜底原因，用作监控标签
const (
	ReasonDerive     = "derive"
	ReasonTemplate   = "template"
	ReasonGeneration = "generation"
	ReasonExtract    = "extract"
)

// Telemetry 记录生成耗时和兜底次数
type Telemetry interface {
	GenerationFinished(backend, mode, outcome string, d time.Duration)
	FallbackUsed(reason string)
}

type nopTelemetry struct{}

func (nopTelemetry) GenerationFinished(string, string, string, time.Duration) {}
func (nopTelemetry) FallbackUsed(string)                                      {}

// FortuneService 串起 画像推导 -> 提示词 -> 生成 -> 解析 -> 兜底 -> 保存
type FortuneService struct {
	provider       llm.Provider // 缓冲接口用
	streamProvider llm.Provider // 流式接口用
	sink           repository.FortuneSink
	extractor      *extract.Extractor
	telemetry      Telemetry
	template       string
	now            func() time.Time
}

// NewFortuneService 构造函数 (依赖注入)
// streamProvider 为 nil 时和 provider 相同；sink、extractor、telemetry 为 nil 时使用空实现
func NewFortuneService(provider, streamProvider llm.Provider, sink repository.FortuneSink, extractor *extract.Extractor, telemetry Telemetry, template string) *FortuneService {
	if streamProvider == nil {
		streamProvider = provider
	}
	if sink == nil {
		sink = repository.NewNopStore()
	}
	if extractor == nil {
		extractor = extract.New(nil)
	}
	if telemetry == nil {
		telemetry = nopTelemetry{}
	}
	return &FortuneService{
		provider:       provider,
		streamProvider: streamProvider,
		sink:           sink,
		extractor:      extractor,
		telemetry:      telemetry,
		template:       template,
		now:            time.Now,
	}
}

// derive 日期无效时照常继续，只记日志
func (s *FortuneService) derive(profile model.UserProfile) model.DerivedTraits {
	traits, err := saju.Derive(profile.BirthDate, profile.BirthTime, profile.Handicap)
	if err != nil {
		slog.Warn("Birth date invalid, using default traits", "name", profile.Name, "err", err)
		s.telemetry.FallbackUsed(ReasonDerive)
	}
	return traits
}

func (s *FortuneService) buildPrompt(profile model.UserProfile, traits model.DerivedTraits) (*prompt.Template, model.Prompt, error) {
	tpl, err := prompt.Lookup(s.template)
	if err != nil {
		return nil, model.Prompt{}, err
	}
	p, err := tpl.Render(tpl.NewData(profile, traits))
	if err != nil {
		return nil, model.Prompt{}, fmt.Errorf("render prompt %s: %w", tpl.Version, err)
	}
	return tpl, p, nil
}

// safeExtract 解析过程中的 panic 也按解析失败处理
func (s *FortuneService) safeExtract(tpl *prompt.Template, text string, traits model.DerivedTraits) (record model.FortuneRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extract panicked: %v", r)
		}
	}()
	record = s.extractor.Extract(tpl, text, traits)
	if missing := record.MissingFields(); len(missing) > 0 {
		return record, fmt.Errorf("extracted record missing %s", strings.Join(missing, ", "))
	}
	return record, nil
}

// fortune 生成运势，任何一步失败都落到兜底运势，不返回错误
func (s *FortuneService) fortune(ctx context.Context, profile model.UserProfile, traits model.DerivedTraits) model.FortuneRecord {
	fail := func(reason string, err error) model.FortuneRecord {
		slog.Warn("Fortune pipeline fell back to default", "reason", reason, "name", profile.Name, "err", err)
		s.telemetry.FallbackUsed(reason)
		return fallback.DefaultRecord(&profile, &traits)
	}

	// 1. 组装提示词
	tpl, p, err := s.buildPrompt(profile, traits)
	if err != nil {
		return fail(ReasonTemplate, err)
	}

	// 2. 调用模型
	start := time.Now()
	text, err := s.provider.Generate(ctx, p)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.telemetry.GenerationFinished(s.provider.Name(), "buffered", outcome, time.Since(start))
	if err != nil {
		return fail(ReasonGeneration, err)
	}

	// 3. 解析
	record, err := s.safeExtract(tpl, text, traits)
	if err != nil {
		return fail(ReasonExtract, err)
	}
	return record
}

// Analyze 处理一次缓冲请求，总是返回完整的结果
func (s *FortuneService) Analyze(ctx context.Context, profile model.UserProfile) model.FortuneResult {
	slog.Info("收到运势请求", "name", profile.Name, "template", s.template, "backend", s.provider.Name())

	traits := s.derive(profile)
	record := s.fortune(ctx, profile, traits)

	// 4. 保存，失败只体现在 exportInfo 里
	entry := &model.FortuneEntry{
		ID:        newRecordID(),
		Timestamp: s.now(),
		UserInfo:  profile,
		Analysis:  traits,
		Fortune:   record,
	}
	info, err := s.sink.Save(ctx, entry)
	if err != nil {
		slog.Error("Failed to save fortune", "id", entry.ID, "err", err)
		info = model.ExportInfo{
			Success:    false,
			RecordID:   entry.ID,
			ExportedAt: s.now(),
			Error:      err.Error(),
		}
	}

	return model.FortuneResult{
		Phase:      PhaseComplete,
		Analysis:   traits,
		Fortune:    record,
		ExportInfo: info,
	}
}

func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Stream 把模型输出原样转发。无法开始时返回只含一个错误片段的通道
func (s *FortuneService) Stream(ctx context.Context, profile model.UserProfile) <-chan string {
	slog.Info("收到流式运势请求", "name", profile.Name, "template", s.template, "backend", s.streamProvider.Name())

	traits := s.derive(profile)
	p, err := prompt.Build(s.template, profile, traits)
	if err != nil {
		slog.Error("Failed to build stream prompt", "err", err)
		return errorStream(err)
	}

	start := time.Now()
	upstream, err := s.streamProvider.Stream(ctx, p)
	if err != nil {
		slog.Error("Failed to start stream", "backend", s.streamProvider.Name(), "err", err)
		s.telemetry.GenerationFinished(s.streamProvider.Name(), "stream", "error", time.Since(start))
		return errorStream(err)
	}

	out := make(chan string, 10)
	go func() {
		defer close(out)
		outcome := "ok"
		defer func() {
			s.telemetry.GenerationFinished(s.streamProvider.Name(), "stream", outcome, time.Since(start))
		}()
		for chunk := range upstream {
			if llm.IsErrorChunk(chunk) {
				outcome = "error"
			}
			select {
			case out <- chunk:
			case <-ctx.Done():
				outcome = "canceled"
				// 让上游自己退出
				go drain(upstream)
				return
			}
		}
	}()
	return out
}

func errorStream(err error) <-chan string {
	msg := err.Error()
	if errors.Is(err, llm.ErrGenerationUnavailable) {
		msg = strings.TrimPrefix(msg, llm.ErrGenerationUnavailable.Error()+": ")
	}
	ch := make(chan string, 1)
	ch <- llm.ErrorChunk(msg)
	close(ch)
	return ch
}

func drain(ch <-chan string) {
	for range ch {
	}
}
