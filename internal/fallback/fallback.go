// Package fallback 在推导、生成或解析任何一步失败时给出完整的默认运势
package fallback

import (
	"strings"

	"github.com/leon37/GolfFortune/internal/model"
	"github.com/leon37/GolfFortune/internal/saju"
)

// 差点分档
const (
	TierSingle       = "싱글"
	TierIntermediate = "중급"
	TierBeginner     = "초심자"
)

// Tier 按差点分三档。没有填写差点按初学者处理
func Tier(handicap *int) string {
	switch {
	case handicap == nil:
		return TierBeginner
	case *handicap < 10:
		return TierSingle
	case *handicap < 20:
		return TierIntermediate
	default:
		return TierBeginner
	}
}

// Generic 是没有任何上下文时的默认运势
func Generic() model.FortuneRecord {
	return model.FortuneRecord{
		Title:           "오늘은 신중하게 플레이하세요",
		LuckyClub:       "퍼터",
		LuckyBall:       "타이틀리스트",
		LuckyHole:       "9번홀",
		LuckyItem:       "거리측정기",
		LuckyTPO:        "청색 상의, 하얀색 하의",
		RoundFortune:    "오늘은 차분하게 플레이하는 것이 중요합니다.",
		BettingFortune:  "작은 내기만 하세요.",
		CourseFortune:   "평지 코스가 좋겠습니다.",
		ScoreFortune:    "평소보다 2-3타 높게 잡으세요.",
		StrategyFortune: "안전한 플레이를 선택하세요.",
		Quote:           "골프는 마음의 게임입니다.",
	}
}

func first(list []string, def string) string {
	if len(list) == 0 || strings.TrimSpace(list[0]) == "" {
		return def
	}
	return list[0]
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// DefaultRecord 生成兜底运势
// profile 或 traits 任一为 nil 时返回 Generic()，否则把已知信息代入固定文案
func DefaultRecord(profile *model.UserProfile, traits *model.DerivedTraits) model.FortuneRecord {
	if profile == nil || traits == nil {
		return Generic()
	}

	level := Tier(profile.Handicap)
	personality := orDefault(traits.Personality, "활발하고 도전적")
	golfStyle := orDefault(traits.GolfStyle, "균형적")
	strength := first(traits.Strengths, saju.TagDriver)
	weakness := first(traits.Weaknesses, saju.TagPutting)
	element := orDefault(string(traits.Element), "목")
	elementName := orDefault(traits.ElementName, "목의 기운")
	venue := orDefault(profile.CountryClub, "평지 코스")

	return model.FortuneRecord{
		Title:           profile.Name + "님의 오늘 골프 운세",
		LuckyClub:       saju.LuckyClub(traits.Strengths),
		LuckyBall:       saju.LuckyBall(traits.LuckyColors),
		LuckyHole:       saju.LuckyHole(traits.LuckyNumbers),
		LuckyItem:       saju.LuckyItem(traits.Element),
		LuckyTPO:        saju.LuckyTPO(traits.LuckyColors),
		RoundFortune:    personality + "한 성격으로 " + golfStyle + "한 플레이가 좋겠습니다.",
		BettingFortune:  level + " 레벨에 맞는 작은 내기만 하세요. " + strength + "이 강점이니 이를 활용하세요.",
		CourseFortune:   element + " 오행의 기운에 맞는 코스를 선택하세요. " + venue + "가 좋겠습니다.",
		ScoreFortune:    level + " 레벨에 맞는 목표를 설정하세요. " + weakness + "을 보완하는 연습이 필요합니다.",
		StrategyFortune: strength + "을 활용하고 " + weakness + "을 보완하는 전략으로 플레이하세요.",
		Quote:           personality + "한 마음으로 골프를 즐기세요. " + elementName + "이 당신을 응원합니다.",
	}
}
