package saju

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/leon37/GolfFortune/internal/model"
)

// ErrInvalidBirthDate 出生日期无法解析。Derive 此时仍然返回默认行
var ErrInvalidBirthDate = errors.New("invalid birth date")

var dateLayouts = []string{
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
	"2006-1-2",
	"2006.1.2",
	time.RFC3339,
}

// ParseBirthDate 解析前端常见的几种日期写法
func ParseBirthDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidBirthDate, s)
}

// Row 返回指定键的画像，键会先取模
func Row(key int) model.DerivedTraits {
	key = ((key % Keys) + Keys) % Keys
	return rows[key].traits(key)
}

// DefaultTraits 是日期解析失败时使用的默认行 (键 0)
func DefaultTraits() model.DerivedTraits {
	return Row(0)
}

// Derive 根据出生日期查表得到画像
// 出生时间和差点目前不参与查表，只是保留在签名里方便以后细分
// 日期解析失败时返回 DefaultTraits() 和 ErrInvalidBirthDate，调用方记录日志后继续即可
func Derive(birthDate, birthTime string, handicap *int) (model.DerivedTraits, error) {
	t, err := ParseBirthDate(birthDate)
	if err != nil {
		return DefaultTraits(), err
	}
	return Row(t.Year() % Keys), nil
}
