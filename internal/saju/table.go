package saju

import "github.com/leon37/GolfFortune/internal/model"

// 强项/弱项标签词表
const (
	TagDriver   = "드라이버"
	TagIron     = "아이언"
	TagWedge    = "웨지"
	TagPutting  = "퍼팅"
	TagMental   = "멘탈"
	TagDistance = "거리"
	TagAccuracy = "정확도"
	TagFeel     = "감각"
)

// row 是查表的一行。五行的全部属性放在同一个结构体里，避免多个平行数组错位
type row struct {
	element         model.Element
	korean          string
	description     string
	personality     string
	golfStyle       string
	strengths       []string
	weaknesses      []string
	luckyColors     []string
	recommendations []string
}

// rows 以 year % 5 为键，0..4 每个键都必须有定义
var rows = map[int]row{
	0: {
		element:         model.ElementWood,
		korean:          "나무",
		description:     "성장과 발전의 기운",
		personality:     "활발하고 도전적",
		golfStyle:       "공격적",
		strengths:       []string{TagDriver, TagIron},
		weaknesses:      []string{TagPutting, TagMental},
		luckyColors:     []string{"파랑", "초록"},
		recommendations: []string{"충분한 워밍업을 하세요", "긍정적인 마음가짐을 유지하세요"},
	},
	1: {
		element:         model.ElementFire,
		korean:          "불",
		description:     "열정과 활력의 기운",
		personality:     "신중하고 안정적",
		golfStyle:       "안정적",
		strengths:       []string{TagPutting, TagIron},
		weaknesses:      []string{TagDriver, TagDistance},
		luckyColors:     []string{"빨강", "주황"},
		recommendations: []string{"신중한 클럽 선택을 하세요", "안정적인 스윙을 유지하세요"},
	},
	2: {
		element:         model.ElementEarth,
		korean:          "흙",
		description:     "안정과 신뢰의 기운",
		personality:     "창의적이고 예술적",
		golfStyle:       "창의적",
		strengths:       []string{TagWedge, TagPutting},
		weaknesses:      []string{TagIron, TagAccuracy},
		luckyColors:     []string{"노랑", "갈색"},
		recommendations: []string{"창의적인 샷을 시도해보세요", "감각적인 퍼팅을 연습하세요"},
	},
	3: {
		element:         model.ElementMetal,
		korean:          "금",
		description:     "정의와 결단의 기운",
		personality:     "논리적이고 분석적",
		golfStyle:       "전략적",
		strengths:       []string{TagIron, TagDriver},
		weaknesses:      []string{TagWedge, TagFeel},
		luckyColors:     []string{"흰색", "회색"},
		recommendations: []string{"전략적인 코스 관리가 필요합니다", "논리적인 플레이를 하세요"},
	},
	4: {
		element:         model.ElementWater,
		korean:          "물",
		description:     "지혜와 유연성의 기운",
		personality:     "감성적이고 직관적",
		golfStyle:       "감성적",
		strengths:       []string{TagPutting, TagWedge},
		weaknesses:      []string{TagDriver, TagIron},
		luckyColors:     []string{"검정", "보라"},
		recommendations: []string{"직관을 믿고 플레이하세요", "감성적인 골프를 즐기세요"},
	},
}

// Keys 是所有合法的键
const Keys = 5

func (r row) traits(key int) model.DerivedTraits {
	return model.DerivedTraits{
		Key:                key,
		Element:            r.element,
		ElementName:        string(r.element) + " - " + r.korean + "의 기운",
		ElementDescription: r.description,
		Personality:        r.personality,
		GolfStyle:          r.golfStyle,
		Strengths:          clone(r.strengths),
		Weaknesses:         clone(r.weaknesses),
		LuckyColors:        clone(r.luckyColors),
		LuckyNumbers:       []int{key + 1, key + 6},
		Recommendations:    clone(r.recommendations),
		SajuSummary:        string(r.element) + " 오행의 기운을 가진 " + r.personality + "한 성격",
	}
}

// 调用方拿到的切片可以随意修改，不影响表
func clone(s []string) []string {
	return append([]string(nil), s...)
}
