package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leon37/GolfFortune/internal/model"
	"github.com/leon37/GolfFortune/internal/prompt"
	"github.com/leon37/GolfFortune/internal/saju"
)

func mustTemplate(t *testing.T, version string) *prompt.Template {
	t.Helper()
	tpl, err := prompt.Lookup(version)
	require.NoError(t, err)
	return tpl
}

var sampleBodies = map[model.Field]string{
	model.FieldRound:    "자네 올해는 木의 기운이 강하구먼. 드라이버가 잘 맞을 걸세.\n초반에 서두르지만 않으면 되네.",
	model.FieldBetting:  "조급함이 가장 큰 적이라네.",
	model.FieldStrategy: "아이언 거리감이 좋아질 거라네.",
	model.FieldScore:    "후반 홀에서 다리가 무거울 수 있으니 물을 자주 마시게.",
	model.FieldCourse:   "오랜 친구와의 라운드에서 좋은 기운이 온다네.",
	model.FieldQuote:    "공은 도망가지 않는다네.",
}

func TestExtractRecoversRenderedReply(t *testing.T) {
	profile := model.UserProfile{Name: "Test", BirthDate: "1990-05-15", Gender: "male"}
	traits := saju.Row(0)

	for _, version := range prompt.Versions() {
		t.Run(version, func(t *testing.T) {
			tpl := mustTemplate(t, version)
			reply, err := tpl.RenderReply(tpl.NewData(profile, traits), sampleBodies)
			require.NoError(t, err)

			record := New(nil).Extract(tpl, reply, traits)
			for f, want := range sampleBodies {
				assert.Equal(t, want, record.Get(f), "field %s", f)
			}
			assert.Equal(t, reply, record.Title)
			assert.Empty(t, record.MissingFields())
		})
	}
}

func TestExtractFallsBackOnUnrecognisedText(t *testing.T) {
	traits := saju.Row(3)
	for _, version := range prompt.Versions() {
		t.Run(version, func(t *testing.T) {
			tpl := mustTemplate(t, version)
			text := "오늘은 날씨가 좋네요. 그냥 즐겁게 치세요."
			record := New(nil).Extract(tpl, text, traits)

			for _, f := range model.NarrativeFields {
				s, ok := tpl.Section(f)
				require.True(t, ok)
				assert.Equal(t, s.Default, record.Get(f), "field %s", f)
			}
			assert.Equal(t, text, record.Title)
			assert.Equal(t, "드라이버", record.LuckyClub)
			assert.Equal(t, "스릭슨 Z-STAR", record.LuckyBall)
			assert.Equal(t, "하얀색 상의, 검은색 하의", record.LuckyTPO)
			assert.Equal(t, "4번홀", record.LuckyHole)
			assert.Equal(t, "골프 시계", record.LuckyItem)
		})
	}
}

func TestExtractDefaultsAreFieldSpecific(t *testing.T) {
	for _, version := range prompt.Versions() {
		tpl := mustTemplate(t, version)
		seen := map[string]model.Field{}
		for _, f := range model.NarrativeFields {
			s, _ := tpl.Section(f)
			other, dup := seen[s.Default]
			assert.False(t, dup, "%s: %s shares default with %s", version, f, other)
			seen[s.Default] = f
		}
	}
}

func TestExtractBlankTextUsesDefaultTitle(t *testing.T) {
	tpl := mustTemplate(t, prompt.VersionGolsin)
	record := New(nil).Extract(tpl, "  \n", saju.Row(0))
	assert.Equal(t, tpl.DefaultTitle, record.Title)
	assert.Empty(t, record.MissingFields())
}

func TestExtractToleratesPrefixesAndBullets(t *testing.T) {
	tpl := mustTemplate(t, prompt.VersionClassic)
	text := `### 1) 라운드 운
- 오늘은 바람을 잘 읽어야 하네.

**2. 내기 운**
* 작은 내기가 좋다네.

[3] 전략 운:
  티샷은 3번 우드로.

(4) 스코어 운
• 90타 안쪽이면 충분하네.

5. 코스 운 :
산악 코스가 어울리는구먼.

6. 골신의 한마디
서두르지 말게.`

	record := New(nil).Extract(tpl, text, saju.Row(0))
	assert.Equal(t, "오늘은 바람을 잘 읽어야 하네.", record.RoundFortune)
	assert.Equal(t, "작은 내기가 좋다네.", record.BettingFortune)
	assert.Equal(t, "티샷은 3번 우드로.", record.StrategyFortune)
	assert.Equal(t, "90타 안쪽이면 충분하네.", record.ScoreFortune)
	assert.Equal(t, "산악 코스가 어울리는구먼.", record.CourseFortune)
	assert.Equal(t, "서두르지 말게.", record.Quote)
}

func TestExtractGolsinLooseLabels(t *testing.T) {
	tpl := mustTemplate(t, prompt.VersionGolsin)
	text := `좋네… 자네 김골프의 운세를 보자고 했지?

전반 기류: 올해는 흐름이 좋다네.

멘탈 운: 마음을 비우게.
기술 운
숏게임이 살아난다네.

허허, 그러니 너무 조급해 말고… 천천히 가게나.`

	record := New(nil).Extract(tpl, text, saju.Row(0))
	assert.Equal(t, "올해는 흐름이 좋다네.", record.RoundFortune)
	assert.Equal(t, "마음을 비우게.", record.BettingFortune)
	assert.Equal(t, "숏게임이 살아난다네.", record.StrategyFortune)
	assert.Equal(t, "천천히 가게나.", record.Quote)

	s, _ := tpl.Section(model.FieldScore)
	assert.Equal(t, s.Default, record.ScoreFortune)
	s, _ = tpl.Section(model.FieldCourse)
	assert.Equal(t, s.Default, record.CourseFortune)
}

func TestExtractEmptySectionUsesDefault(t *testing.T) {
	tpl := mustTemplate(t, prompt.VersionGolsin)
	text := "멘탈 운\n\n기술 운\n퍼팅이 좋아진다네."
	record := New(nil).Extract(tpl, text, saju.Row(0))

	s, _ := tpl.Section(model.FieldBetting)
	assert.Equal(t, s.Default, record.BettingFortune)
	assert.Equal(t, "퍼팅이 좋아진다네.", record.StrategyFortune)
}

func TestExtractReportsEachField(t *testing.T) {
	tpl := mustTemplate(t, prompt.VersionGolsin)
	results := map[model.Field]bool{}
	obs := ObserverFunc(func(version string, f model.Field, matched bool) {
		assert.Equal(t, prompt.VersionGolsin, version)
		results[f] = matched
	})

	New(Observers(obs, nil)).Extract(tpl, "멘탈 운\n마음을 비우게.", saju.Row(0))

	require.Len(t, results, len(model.NarrativeFields))
	assert.True(t, results[model.FieldBetting])
	assert.False(t, results[model.FieldRound])
	assert.False(t, results[model.FieldQuote])
}

func TestExtractDecoratedHeaders(t *testing.T) {
	tpl := mustTemplate(t, prompt.VersionGolsin)
	cases := map[string]string{
		"emoji":       "🧠 멘탈 운\n마음을 비우게.\n⛳ 기술 운\n숏게임.",
		"emoji vs16":  "🏌️ 멘탈 운\n마음을 비우게.\n❤️‍🔥 기술 운\n숏게임.",
		"crlf bold":   "**멘탈 운**\r\n마음을 비우게.\r\n\r\n**기술 운**\r\n숏게임.\r\n",
		"closed atx":  "## 멘탈 운 ##\n마음을 비우게.\n## 기술 운 ##\n숏게임.",
		"emoji after": "### 🧠 **멘탈 운** 🧠\n마음을 비우게.\n### ⛳ **기술 운:**\n숏게임.",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			record := New(nil).Extract(tpl, text, saju.Row(0))
			assert.Equal(t, "마음을 비우게.", record.BettingFortune)
			assert.Equal(t, "숏게임.", record.StrategyFortune)
		})
	}
}

func TestExtractLooseLabelKeepsDecorationOutOfPreviousField(t *testing.T) {
	tpl := mustTemplate(t, prompt.VersionGolsin)
	text := "🏌️ 전반 기류: 흐름이 좋다네.\n🧠 멘탈 운: 마음을 비우게.\n⛳ **기술 운**: 숏게임.\r\n"

	record := New(nil).Extract(tpl, text, saju.Row(0))
	assert.Equal(t, "흐름이 좋다네.", record.RoundFortune)
	assert.Equal(t, "마음을 비우게.", record.BettingFortune)
	assert.Equal(t, "숏게임.", record.StrategyFortune)
}
