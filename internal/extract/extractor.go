package extract

import (
	"sort"
	"strings"
	"unicode"

	"github.com/leon37/GolfFortune/internal/model"
	"github.com/leon37/GolfFortune/internal/prompt"
	"github.com/leon37/GolfFortune/internal/saju"
)

// Extractor 把生成文本解析成 FortuneRecord
type Extractor struct {
	observer Observer
}

// New 创建 Extractor，observer 可以为 nil
func New(observer Observer) *Extractor {
	return &Extractor{observer: observer}
}

// span 是一个段落标题在文本里的位置
type span struct {
	section *prompt.Section
	start   int
	end     int
}

// locate 找出所有段落标题的位置，按出现顺序排列
func locate(tpl *prompt.Template, text string) []span {
	var spans []span
	for i := range tpl.Sections {
		s := &tpl.Sections[i]
		for j, re := range s.Patterns() {
			if loc := re.FindStringIndex(text); loc != nil {
				start := loc[0]
				if j > 0 {
					start = lineStart(text, start)
				}
				spans = append(spans, span{section: s, start: start, end: loc[1]})
				break
			}
		}
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	return spans
}

// lineStart 宽松匹配只命中标题文字，同一行前面若只有 emoji、# 之类的装饰，
// 起点退到行首，免得装饰混进上一段的内容
func lineStart(text string, start int) int {
	ls := strings.LastIndexByte(text[:start], '\n') + 1
	for _, r := range text[ls:start] {
		if unicode.IsLetter(r) {
			return start
		}
	}
	return ls
}

// content 截取从标题结束到下一个标题开始 (或文本结尾) 的内容
func content(text string, spans []span, i int) string {
	from := spans[i].end
	to := len(text)
	for _, next := range spans[i+1:] {
		if next.start >= from {
			to = next.start
			break
		}
	}
	return clean(text[from:to])
}

var bullets = []string{"-", "*", "•", "·"}

func clean(s string) string {
	s = strings.TrimSpace(s)
	for _, b := range bullets {
		if strings.HasPrefix(s, b) {
			s = strings.TrimSpace(strings.TrimPrefix(s, b))
			break
		}
	}
	return s
}

// Sections 只做文本抽取：返回匹配上的字段内容，未匹配的字段不出现在结果里
func (e *Extractor) Sections(tpl *prompt.Template, text string) map[model.Field]string {
	spans := locate(tpl, text)
	out := make(map[model.Field]string, len(model.NarrativeFields))
	for i, sp := range spans {
		if sp.section.Field == "" {
			continue
		}
		if v := content(text, spans, i); v != "" {
			out[sp.section.Field] = v
		}
	}
	return out
}

// Extract 生成完整的 FortuneRecord
// 叙述字段从文本里抽取，失败时用该字段自己的默认值；幸运项只依赖画像
// 原始文本整体作为 title 保留
func (e *Extractor) Extract(tpl *prompt.Template, text string, traits model.DerivedTraits) model.FortuneRecord {
	record := model.FortuneRecord{
		Title:     text,
		LuckyClub: saju.LuckyClub(traits.Strengths),
		LuckyBall: saju.LuckyBall(traits.LuckyColors),
		LuckyHole: saju.LuckyHole(traits.LuckyNumbers),
		LuckyItem: saju.LuckyItem(traits.Element),
		LuckyTPO:  saju.LuckyTPO(traits.LuckyColors),
	}
	if strings.TrimSpace(text) == "" {
		record.Title = tpl.DefaultTitle
	}

	found := e.Sections(tpl, text)
	for _, f := range model.NarrativeFields {
		v, ok := found[f]
		if e.observer != nil {
			e.observer.SectionMatched(tpl.Version, f, ok)
		}
		if !ok {
			s, _ := tpl.Section(f)
			v = s.Default
		}
		record.Set(f, v)
	}
	return record
}
