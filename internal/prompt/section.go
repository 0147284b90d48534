package prompt

import (
	"regexp"
	"strings"
	"text/template"

	"github.com/leon37/GolfFortune/internal/model"
)

// Section 是输出格式里的一个段落
// 提示词里写出的标题和抽取时使用的正则都由同一个 Section 生成，两边不会各改各的
type Section struct {
	// Field 为空表示这一段只起分隔作用，不映射到任何字段
	Field model.Field
	// Header 标题行，可以引用 Data 字段 (text/template)
	Header string
	// Hint 标题下面给模型的填写说明 (text/template)
	Hint string
	// Inline 为 true 时内容和标题写在同一行
	Inline bool
	// Label 定位标题用的正则片段
	Label string
	// Loose 宽松匹配用的正则片段，为空时沿用 Label
	Loose string
	// Default 没匹配上时该字段的默认值
	Default string

	header   *template.Template
	hint     *template.Template
	primary  *regexp.Regexp
	fallback *regexp.Regexp
}

// 标题两侧允许出现的装饰：markdown 标题、加粗、列表符号、emoji 及其变体选择符
const (
	decoration  = `(?:#{1,6}|\*{1,2}|__|[>\-•·]|[\p{So}\p{Sk}\x{FE0F}\x{200D}]+)`
	trailing    = `(?:\*\*|__|#{1,6}|[\p{So}\x{FE0F}\x{200D}]+)`
	labelPrefix = `(?:` + decoration + `[ \t]*)*(?:[\[(]?\d{1,2}[.)\]]?[ \t]*)?(?:` + decoration + `[ \t]*)*`
	labelSuffix = `(?:[ \t]*` + trailing + `)*[ \t]*[:：]?(?:[ \t]*` + trailing + `)*[ \t\r]*$`
)

func (s *Section) compile(funcs template.FuncMap) error {
	var err error
	if s.header, err = template.New("header").Funcs(funcs).Parse(s.Header); err != nil {
		return err
	}
	if s.hint, err = template.New("hint").Funcs(funcs).Parse(s.Hint); err != nil {
		return err
	}

	if s.Inline {
		s.primary, err = regexp.Compile(`(?im)^[ \t]*` + labelPrefix + `(?:` + s.Label + `)[ \t]*[:：]?`)
	} else {
		// 独占一行的标题才算严格匹配，行尾可能带 \r
		s.primary, err = regexp.Compile(`(?im)^[ \t]*` + labelPrefix + `(?:` + s.Label + `)` + labelSuffix)
	}
	if err != nil {
		return err
	}

	loose := s.Loose
	if loose == "" {
		loose = s.Label
	}
	s.fallback, err = regexp.Compile(`(?i)(?:` + loose + `)(?:\*\*|__)?[ \t]*[:：]?(?:[ \t]*(?:\*\*|__))?`)
	return err
}

// Patterns 按优先级返回定位标题的正则：先严格后宽松
func (s *Section) Patterns() []*regexp.Regexp {
	return []*regexp.Regexp{s.primary, s.fallback}
}

func (s *Section) render(t *template.Template, d Data) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, d); err != nil {
		return "", err
	}
	return sb.String(), nil
}
