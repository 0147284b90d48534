package extract

import (
	"context"
	"log/slog"

	"github.com/leon37/GolfFortune/internal/model"
)

// Observer 接收每个字段的匹配结果，用于日志和监控
type Observer interface {
	SectionMatched(version string, field model.Field, matched bool)
}

// ObserverFunc 让普通函数实现 Observer
type ObserverFunc func(version string, field model.Field, matched bool)

func (f ObserverFunc) SectionMatched(version string, field model.Field, matched bool) {
	f(version, field, matched)
}

// Observers 把多个 Observer 合成一个，nil 会被跳过
func Observers(obs ...Observer) Observer {
	var list multiObserver
	for _, o := range obs {
		if o != nil {
			list = append(list, o)
		}
	}
	return list
}

type multiObserver []Observer

func (m multiObserver) SectionMatched(version string, field model.Field, matched bool) {
	for _, o := range m {
		o.SectionMatched(version, field, matched)
	}
}

// LogObserver 以 debug 级别记录每个字段是否匹配
type LogObserver struct {
	Logger *slog.Logger
}

func (o LogObserver) SectionMatched(version string, field model.Field, matched bool) {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.LogAttrs(context.Background(), slog.LevelDebug, "section parsed",
		slog.String("template", version),
		slog.String("field", string(field)),
		slog.Bool("matched", matched),
	)
}
