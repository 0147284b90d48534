package main

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/leon37/GolfFortune/internal/model"
)

// analyzer 是 FortuneService 在这里用到的部分
type analyzer interface {
	Analyze(ctx context.Context, profile model.UserProfile) model.FortuneResult
}

// batchEntry 输出文件里每个用户的一项
type batchEntry struct {
	UserInfo model.UserProfile   `json:"userInfo"`
	Analysis model.DerivedTraits `json:"analysis"`
	Fortune  model.FortuneRecord `json:"fortune"`
}

func sampleUsers() []model.UserProfile {
	h1, h2 := 15, 8
	return []model.UserProfile{
		{Name: "김골프", BirthDate: "1990-05-15", Gender: "남성", Handicap: &h1, PhoneNumber: "010-1234-5678"},
		{Name: "이파", BirthDate: "1985-08-22", Gender: "여성", Handicap: &h2, PhoneNumber: "010-9876-5432"},
	}
}

// generate 并发为每个用户生成运势，按姓名汇总
// Analyze 本身不会失败，只有 ctx 取消时返回错误
func generate(ctx context.Context, svc analyzer, users []model.UserProfile, limit int) (map[string]batchEntry, error) {
	if limit < 1 {
		limit = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var mu sync.Mutex
	out := make(map[string]batchEntry, len(users))
	for _, u := range users {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			slog.Info("운세 생성 중", "name", u.Name)
			result := svc.Analyze(ctx, u)

			mu.Lock()
			defer mu.Unlock()
			out[u.Name] = batchEntry{UserInfo: u, Analysis: result.Analysis, Fortune: result.Fortune}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
