package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leon37/GolfFortune/internal/app"
	"github.com/leon37/GolfFortune/internal/config"
	"github.com/leon37/GolfFortune/internal/model"
)

type options struct {
	usersFile   string
	out         string
	concurrency int
	backend     string
	template    string
	save        bool
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "generate-fortunes",
		Short: "批量生成运势并写入一个 JSON 文件",
		Long: `按配置的生成后端为一批用户生成运势，结果按姓名写入一个 JSON 文件，
页面可以直接把它当作静态数据使用。没有指定 --users 时使用内置的两个示例用户。`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.usersFile, "users", "", "用户列表 JSON 文件 (数组)")
	flags.StringVarP(&opts.out, "out", "o", filepath.Join("public", "fortunes.json"), "输出文件")
	flags.IntVarP(&opts.concurrency, "concurrency", "c", 2, "同时请求的数量")
	flags.StringVar(&opts.backend, "backend", "", "覆盖 generation.backend")
	flags.StringVar(&opts.template, "template", "", "覆盖 generation.template")
	flags.BoolVar(&opts.save, "save", false, "同时按 storage 配置保存每条结果")
	return cmd
}

func run(ctx context.Context, opts *options) error {
	conf, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if opts.backend != "" {
		conf.Generation.Backend = opts.backend
	}
	if opts.template != "" {
		conf.Generation.Template = opts.template
	}
	if !opts.save {
		conf.Storage.Driver = "none"
	}

	users := sampleUsers()
	if opts.usersFile != "" {
		if users, err = loadUsers(opts.usersFile); err != nil {
			return err
		}
	}

	pipeline, err := app.NewPipeline(conf, nil)
	if err != nil {
		return err
	}

	fortunes, err := generate(ctx, pipeline.Service, users, opts.concurrency)
	if err != nil {
		return err
	}
	if err := writeJSON(opts.out, fortunes); err != nil {
		return err
	}
	slog.Info("모든 운세 저장 완료", "path", opts.out, "count", len(fortunes))
	return nil
}

func loadUsers(path string) ([]model.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	var users []model.UserProfile
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse users: %w", err)
	}
	return users, nil
}

func writeJSON(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fortunes: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
