package repository

import (
	"context"
	"strings"

	"github.com/leon37/GolfFortune/internal/model"
)

// FortuneSink 保存一次完整的运势结果
type FortuneSink interface {
	Save(ctx context.Context, entry *model.FortuneEntry) (model.ExportInfo, error)
}

// FortuneStore 在保存之外还支持管理端分页查询
type FortuneStore interface {
	FortuneSink
	List(ctx context.Context, filter ListFilter) ([]model.FortuneEntry, int64, error)
}

// ListFilter 分页条件，Name 为空表示不过滤
type ListFilter struct {
	Page     int
	PageSize int
	Name     string
}

const maxPageSize = 100

// Normalize 修正越界的页码和页大小
func (f ListFilter) Normalize() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
	f.Name = strings.TrimSpace(f.Name)
	return f
}

func (f ListFilter) offset() int {
	return (f.Page - 1) * f.PageSize
}

// nopStore 对应 storage.driver=none
type nopStore struct{}

// NewNopStore 不保存任何东西
func NewNopStore() FortuneStore {
	return nopStore{}
}

func (nopStore) Save(_ context.Context, entry *model.FortuneEntry) (model.ExportInfo, error) {
	return model.ExportInfo{
		Success:      true,
		RecordID:     entry.ID,
		ExportFormat: "NONE",
		ExportedAt:   entry.Timestamp,
	}, nil
}

func (nopStore) List(context.Context, ListFilter) ([]model.FortuneEntry, int64, error) {
	return []model.FortuneEntry{}, 0, nil
}
