package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/leon37/GolfFortune/internal/model"
)

// gormStore 把运势保存到 fortunes 表
type gormStore struct {
	db *gorm.DB
}

// NewGormStore 构造函数，表结构由 database.NewMySQLConnection 迁移
func NewGormStore(db *gorm.DB) FortuneStore {
	return &gormStore{db: db}
}

func (r *gormStore) Save(ctx context.Context, entry *model.FortuneEntry) (model.ExportInfo, error) {
	row := &model.FortuneEntity{
		RecordID: entry.ID,
		Name:     entry.UserInfo.Name,
		Element:  string(entry.Analysis.Element),
		UserInfo: entry.UserInfo,
		Analysis: entry.Analysis,
		Fortune:  entry.Fortune,
	}
	if !entry.Timestamp.IsZero() {
		row.CreatedAt = entry.Timestamp
	}
	// WithContext 确保请求超时能传递到数据库层
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return model.ExportInfo{}, fmt.Errorf("insert fortune: %w", err)
	}
	return row.ToEntry().ExportInfo, nil
}

func (r *gormStore) List(ctx context.Context, filter ListFilter) ([]model.FortuneEntry, int64, error) {
	filter = filter.Normalize()

	// Count 会改写语句，查询两次各建一次
	query := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&model.FortuneEntity{})
		if filter.Name != "" {
			q = q.Where("name LIKE ?", "%"+filter.Name+"%")
		}
		return q
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count fortunes: %w", err)
	}

	var rows []model.FortuneEntity
	err := query().Order("created_at DESC").Offset(filter.offset()).Limit(filter.PageSize).Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list fortunes: %w", err)
	}

	entries := make([]model.FortuneEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.ToEntry())
	}
	return entries, total, nil
}
