package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/leon37/GolfFortune/internal/model"
	"github.com/leon37/GolfFortune/internal/saju"
)

// 未填写的可选字段统一替换成这些标记，不能留空
const (
	MarkerUnknown   = "모름"
	MarkerUndecided = "미정"
	MarkerNone      = "없음"
	// MarkerDaytime 问候语里没有出生时间时的说法 ("낮에 태어난")
	MarkerDaytime = "낮"
)

// ErrUnknownTemplate 请求了未登记的模板版本
var ErrUnknownTemplate = errors.New("unknown prompt template")

// Template 是一对版本化的 "提示词 + 抽取规则"
type Template struct {
	Version string
	// System 人设和输出格式，User 用户信息；两者都可以引用 Data
	System string
	User   string
	// DefaultTitle 生成文本为空时的标题
	DefaultTitle string
	// HideVenue 为 true 时球场一栏总是写 "미정"
	HideVenue bool
	Sections  []Section

	system *template.Template
	user   *template.Template
}

// Data 是渲染模板时可用的全部数据
type Data struct {
	Name      string
	BirthDate string
	BirthTime string
	// GreetingTime 问候语用的出生时间，未填时是 "낮" 而不是 "모름"
	GreetingTime string
	Gender       string
	Handicap     string
	Venue        string
	DriverBrand  string
	IronBrand    string
	WedgeBrand   string
	PutterBrand  string
	BallBrand    string
	Extra        string

	Traits    model.DerivedTraits
	LuckyClub string
	LuckyBall string
	LuckyTPO  string
	LuckyHole string
	LuckyItem string

	// Format 由 Sections 生成的输出格式，渲染 System/User 前填好
	Format string
}

var funcs = template.FuncMap{
	"join": func(s []string) string { return strings.Join(s, ", ") },
}

func or(v, marker string) string {
	if v = strings.TrimSpace(v); v == "" {
		return marker
	}
	return v
}

// NewData 把用户输入和画像整理成模板数据
func (t *Template) NewData(p model.UserProfile, traits model.DerivedTraits) Data {
	handicap := MarkerUnknown
	if h, ok := p.HandicapValue(); ok {
		handicap = strconv.Itoa(h)
	}
	venue := or(p.CountryClub, MarkerUndecided)
	if t.HideVenue {
		venue = MarkerUndecided
	}
	return Data{
		Name:         p.Name,
		BirthDate:    p.BirthDate,
		BirthTime:    or(p.BirthTime, MarkerUnknown),
		GreetingTime: or(p.BirthTime, MarkerDaytime),
		Gender:       p.Gender,
		Handicap:     handicap,
		Venue:        venue,
		DriverBrand:  or(p.DriverBrand, MarkerUndecided),
		IronBrand:    or(p.IronBrand, MarkerUndecided),
		WedgeBrand:   or(p.WedgeBrand, MarkerUndecided),
		PutterBrand:  or(p.PutterBrand, MarkerUndecided),
		BallBrand:    or(p.BallBrand, MarkerUndecided),
		Extra:        or(p.Extra, MarkerNone),
		Traits:       traits,
		LuckyClub:    saju.LuckyClub(traits.Strengths),
		LuckyBall:    saju.LuckyBall(traits.LuckyColors),
		LuckyTPO:     saju.LuckyTPO(traits.LuckyColors),
		LuckyHole:    saju.LuckyHole(traits.LuckyNumbers),
		LuckyItem:    saju.LuckyItem(traits.Element),
	}
}

// format 拼出输出格式，body 决定每段标题下面写什么
func (t *Template) format(d Data, body func(s *Section) (string, error)) (string, error) {
	blocks := make([]string, 0, len(t.Sections))
	for i := range t.Sections {
		s := &t.Sections[i]
		header, err := s.render(s.header, d)
		if err != nil {
			return "", fmt.Errorf("render header %q: %w", s.Header, err)
		}
		content, err := body(s)
		if err != nil {
			return "", err
		}
		switch {
		case content == "":
			blocks = append(blocks, header)
		case s.Inline:
			blocks = append(blocks, header+" "+content)
		default:
			blocks = append(blocks, header+"\n"+content)
		}
	}
	return strings.Join(blocks, "\n\n"), nil
}

func (t *Template) hints(d Data) func(s *Section) (string, error) {
	return func(s *Section) (string, error) {
		return s.render(s.hint, d)
	}
}

// Render 渲染完整的提示词
func (t *Template) Render(d Data) (model.Prompt, error) {
	format, err := t.format(d, t.hints(d))
	if err != nil {
		return model.Prompt{}, err
	}
	d.Format = format

	var sys, usr strings.Builder
	if err := t.system.Execute(&sys, d); err != nil {
		return model.Prompt{}, fmt.Errorf("render system prompt: %w", err)
	}
	if err := t.user.Execute(&usr, d); err != nil {
		return model.Prompt{}, fmt.Errorf("render user prompt: %w", err)
	}
	return model.Prompt{
		System: strings.TrimSpace(sys.String()),
		User:   strings.TrimSpace(usr.String()),
	}, nil
}

// RenderReply 按模板自己的输出格式拼出一段 "模型回复"，字段段落填入 bodies
// 分隔段落保留原有说明文字。主要用于校验抽取规则和提示词是否一致
func (t *Template) RenderReply(d Data, bodies map[model.Field]string) (string, error) {
	hint := t.hints(d)
	return t.format(d, func(s *Section) (string, error) {
		if s.Field == "" {
			return hint(s)
		}
		return bodies[s.Field], nil
	})
}

// Section 返回字段对应的段落
func (t *Template) Section(f model.Field) (*Section, bool) {
	for i := range t.Sections {
		if t.Sections[i].Field == f {
			return &t.Sections[i], true
		}
	}
	return nil, false
}

func (t *Template) compile() error {
	var err error
	if t.system, err = template.New(t.Version + "-system").Funcs(funcs).Parse(t.System); err != nil {
		return err
	}
	if t.user, err = template.New(t.Version + "-user").Funcs(funcs).Parse(t.User); err != nil {
		return err
	}
	for i := range t.Sections {
		if err := t.Sections[i].compile(funcs); err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}
	}
	return nil
}
