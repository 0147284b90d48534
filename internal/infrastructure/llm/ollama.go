package llm

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/leon37/GolfFortune/internal/model"
)

// OllamaClient 调用本地 Ollama 的 /api/generate
type OllamaClient struct {
	client    *resty.Client
	modelName string
	opts      Options
}

type generateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	System  string         `json:"system,omitempty"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

// 非流式时是完整响应，流式时每行一个
type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

func NewOllamaClient(baseURL, modelName string, opts Options) *OllamaClient {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json")

	return &OllamaClient{client: c, modelName: modelName, opts: opts}
}

func (o *OllamaClient) Name() string {
	return "ollama"
}

func (o *OllamaClient) payload(p model.Prompt, stream bool) generateRequest {
	options := make(map[string]any)
	if o.opts.Temperature > 0 {
		options["temperature"] = o.opts.Temperature
	}
	if o.opts.TopP > 0 {
		options["top_p"] = o.opts.TopP
	}
	if o.opts.MaxTokens > 0 {
		options["num_predict"] = o.opts.MaxTokens
	}
	req := generateRequest{
		Model:  o.modelName,
		Prompt: p.User,
		System: p.System,
		Stream: stream,
	}
	if len(options) > 0 {
		req.Options = options
	}
	return req
}

func (o *OllamaClient) Generate(ctx context.Context, p model.Prompt) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.opts.timeout())
	defer cancel()

	var out generateResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(o.payload(p, false)).
		SetResult(&out).
		ForceContentType("application/json").
		Post("/api/generate")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: ollama status %d: %s", ErrGenerationUnavailable, resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	if out.Error != "" {
		return "", fmt.Errorf("%w: ollama error: %s", ErrGenerationUnavailable, out.Error)
	}
	if strings.TrimSpace(out.Response) == "" {
		return "", fmt.Errorf("%w: empty response", ErrGenerationUnavailable)
	}
	return out.Response, nil
}

func (o *OllamaClient) Stream(parent context.Context, p model.Prompt) (<-chan string, error) {
	ctx, cancel := context.WithTimeout(parent, o.opts.streamTimeout())

	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(o.payload(p, true)).
		SetDoNotParseResponse(true).
		Post("/api/generate")
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}
	body := resp.RawBody()
	if resp.IsError() {
		msg, _ := io.ReadAll(io.LimitReader(body, 4096))
		body.Close()
		cancel()
		return nil, fmt.Errorf("%w: ollama status %d: %s", ErrGenerationUnavailable, resp.StatusCode(), strings.TrimSpace(string(msg)))
	}

	outCh := make(chan string, 10)
	go func() {
		defer close(outCh)
		defer cancel()
		defer body.Close()

		fail := func(msg string) {
			if parent.Err() != nil {
				return
			}
			slog.Error("Stream error", "backend", o.Name(), "err", msg)
			send(parent, outCh, ErrorChunk(msg))
		}

		scanner := bufio.NewScanner(body)
		scanner.Buffer(make([]byte, 0, 64*1024), 2*1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			var chunk generateResponse
			if err := json.Unmarshal([]byte(line), &chunk); err != nil {
				fail("decode ollama stream chunk: " + err.Error())
				return
			}
			if chunk.Error != "" {
				fail(chunk.Error)
				return
			}
			if chunk.Response != "" {
				if !send(ctx, outCh, chunk.Response) {
					return
				}
			}
			if chunk.Done {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			fail("read ollama stream: " + err.Error())
		}
	}()

	return outCh, nil
}
