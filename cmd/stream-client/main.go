package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leon37/GolfFortune/internal/infrastructure/llm"
	"github.com/leon37/GolfFortune/internal/model"
)

type options struct {
	url       string
	name      string
	birthDate string
	birthTime string
	gender    string
	handicap  int
	venue     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "stream-client",
		Short:        "调用 /api/fortune 并实时打印返回的文本",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			profile := model.UserProfile{
				Name:        opts.name,
				BirthDate:   opts.birthDate,
				BirthTime:   opts.birthTime,
				Gender:      opts.gender,
				CountryClub: opts.venue,
			}
			if cmd.Flags().Changed("handicap") {
				profile.Handicap = &opts.handicap
			}
			return stream(ctx, opts.url, profile, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.url, "url", "http://localhost:3000/api/fortune", "流式接口地址")
	flags.StringVar(&opts.name, "name", "김골프", "姓名")
	flags.StringVar(&opts.birthDate, "birth-date", "1990-05-15", "出生日期")
	flags.StringVar(&opts.birthTime, "birth-time", "", "出生时间 HH:MM")
	flags.StringVar(&opts.gender, "gender", "남성", "性别")
	flags.IntVar(&opts.handicap, "handicap", 0, "差点")
	flags.StringVar(&opts.venue, "venue", "", "球场")
	return cmd
}

// stream 发起请求并把收到的文本原样写到 w
// 服务端在结尾追加了错误片段时返回 error
func stream(ctx context.Context, url string, profile model.UserProfile, w io.Writer) error {
	body, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	// 1. 发起 POST 请求
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("服务端返回 %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	// 2. 按到达顺序输出，不按行缓冲
	var full strings.Builder
	buf := make([]byte, 1024)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			full.Write(buf[:n])
			if _, werr := w.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("读取流错误: %w", err)
		}
	}
	fmt.Fprintln(w)

	if msg, ok := llm.TrailingError(full.String()); ok {
		return fmt.Errorf("生成中断: %s", msg)
	}
	return nil
}
