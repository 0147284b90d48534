package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/leon37/GolfFortune/internal/model"
)

// ErrGenerationUnavailable 后端不可达、返回非 2xx 或者没有内容
var ErrGenerationUnavailable = errors.New("generation backend unavailable")

// Provider 定义了生成后端的通用行为
type Provider interface {
	// Name 后端名称，用于日志和监控
	Name() string
	// Generate 等待完整文本返回
	Generate(ctx context.Context, p model.Prompt) (string, error)
	// Stream 按到达顺序推送增量文本，通道关闭即结束
	// 只有请求没能建立时才返回 error；之后的错误会变成一个结尾的错误片段
	Stream(ctx context.Context, p model.Prompt) (<-chan string, error)
}

// Options 采样参数，零值表示使用后端默认
type Options struct {
	Temperature   float32
	TopP          float32
	MaxTokens     int
	Timeout       time.Duration
	StreamTimeout time.Duration
}

const (
	defaultTimeout       = 60 * time.Second
	defaultStreamTimeout = 5 * time.Minute
)

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return defaultTimeout
	}
	return o.Timeout
}

func (o Options) streamTimeout() time.Duration {
	if o.StreamTimeout <= 0 {
		return defaultStreamTimeout
	}
	return o.StreamTimeout
}

const errorChunkPrefix = "\n\n[에러] "

// ErrorChunk 是流中途出错时追加的最后一个片段
func ErrorChunk(msg string) string {
	if msg == "" {
		msg = "unknown error"
	}
	return errorChunkPrefix + msg
}

// IsErrorChunk 判断片段是否是 ErrorChunk 生成的
func IsErrorChunk(s string) bool {
	return strings.HasPrefix(s, errorChunkPrefix)
}

// TrailingError 从拼接好的全文里取出结尾错误片段的消息
func TrailingError(text string) (string, bool) {
	i := strings.LastIndex(text, errorChunkPrefix)
	if i < 0 {
		return "", false
	}
	return text[i+len(errorChunkPrefix):], true
}

// send 在消费方离开时放弃发送
func send(ctx context.Context, ch chan<- string, s string) bool {
	select {
	case ch <- s:
		return true
	case <-ctx.Done():
		return false
	}
}
