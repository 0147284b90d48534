package prompt

import (
	"fmt"
	"sort"

	"github.com/leon37/GolfFortune/internal/model"
)

// DefaultVersion 未指定版本时使用的模板
const DefaultVersion = VersionGolsin

var registry = map[string]*Template{}

func register(t *Template) {
	if err := t.compile(); err != nil {
		panic(fmt.Sprintf("prompt template %s: %v", t.Version, err))
	}
	for _, f := range model.NarrativeFields {
		s, ok := t.Section(f)
		if !ok || s.Default == "" {
			panic(fmt.Sprintf("prompt template %s: missing section or default for %s", t.Version, f))
		}
	}
	registry[t.Version] = t
}

func init() {
	register(golsinTemplate())
	register(classicTemplate())
}

// Lookup 按版本查找模板，空字符串表示默认版本
func Lookup(version string) (*Template, error) {
	if version == "" {
		version = DefaultVersion
	}
	t, ok := registry[version]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, version)
	}
	return t, nil
}

// Versions 列出已登记的模板版本
func Versions() []string {
	out := make([]string, 0, len(registry))
	for v := range registry {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Build 用指定版本的模板生成提示词
func Build(version string, p model.UserProfile, traits model.DerivedTraits) (model.Prompt, error) {
	t, err := Lookup(version)
	if err != nil {
		return model.Prompt{}, err
	}
	return t.Render(t.NewData(p, traits))
}
