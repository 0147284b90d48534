package model

import (
	"time"

	"gorm.io/gorm"
)

// FortuneEntity 是映射数据库表的结构体
type FortuneEntity struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RecordID string `gorm:"type:varchar(36);uniqueIndex" json:"record_id"`
	Name     string `gorm:"type:varchar(100);index" json:"name"`
	Element  string `gorm:"type:varchar(8)" json:"element"`

	// 原始结构整体序列化存储，列表接口原样还原
	UserInfo UserProfile   `gorm:"serializer:json;type:text" json:"user_info"`
	Analysis DerivedTraits `gorm:"serializer:json;type:text" json:"analysis"`
	Fortune  FortuneRecord `gorm:"serializer:json;type:mediumtext" json:"fortune"`
}

// TableName 强制指定表名
func (FortuneEntity) TableName() string {
	return "fortunes"
}

// ToEntry 还原为 FortuneEntry
func (e FortuneEntity) ToEntry() FortuneEntry {
	return FortuneEntry{
		ID:        e.RecordID,
		Timestamp: e.CreatedAt,
		UserInfo:  e.UserInfo,
		Analysis:  e.Analysis,
		Fortune:   e.Fortune,
		ExportInfo: ExportInfo{
			Success:      true,
			RecordID:     e.RecordID,
			ExportFormat: "MYSQL",
			ExportedAt:   e.CreatedAt,
		},
	}
}
