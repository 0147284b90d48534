package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/leon37/GolfFortune/internal/model"
)

// OpenAIClient 适用于 OpenAI 以及所有兼容 chat completions 的服务 (DeepSeek 等)
type OpenAIClient struct {
	modelName string
	opts      Options
	client    *openai.Client
}

func NewOpenAIClient(apiKey, baseURL, modelName string, opts Options) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}

	return &OpenAIClient{
		modelName: modelName,
		opts:      opts,
		client:    openai.NewClientWithConfig(config),
	}
}

func (o *OpenAIClient) Name() string {
	return "openai"
}

func (o *OpenAIClient) request(p model.Prompt, stream bool) openai.ChatCompletionRequest {
	var messages []openai.ChatCompletionMessage
	if p.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: p.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: p.User})

	return openai.ChatCompletionRequest{
		Model:       o.modelName,
		Messages:    messages,
		Temperature: o.opts.Temperature,
		TopP:        o.opts.TopP,
		MaxTokens:   o.opts.MaxTokens,
		Stream:      stream,
	}
}

func (o *OpenAIClient) Generate(ctx context.Context, p model.Prompt) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.opts.timeout())
	defer cancel()

	resp, err := o.client.CreateChatCompletion(ctx, o.request(p, false))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: empty completion", ErrGenerationUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAIClient) Stream(parent context.Context, p model.Prompt) (<-chan string, error) {
	ctx, cancel := context.WithTimeout(parent, o.opts.streamTimeout())

	stream, err := o.client.CreateChatCompletionStream(ctx, o.request(p, true))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}

	outCh := make(chan string, 10)
	go func() {
		defer close(outCh)
		defer cancel()
		defer stream.Close()
		for {
			response, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				if parent.Err() != nil {
					// 客户端已经断开
					return
				}
				slog.Error("Stream error", "backend", o.Name(), "err", err)
				send(parent, outCh, ErrorChunk(err.Error()))
				return
			}
			if len(response.Choices) > 0 {
				if delta := response.Choices[0].Delta.Content; delta != "" {
					if !send(ctx, outCh, delta) {
						return
					}
				}
			}
		}
	}()

	return outCh, nil
}
