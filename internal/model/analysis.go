package model

// Element 五行
type Element string

const (
	ElementWood  Element = "木"
	ElementFire  Element = "火"
	ElementEarth Element = "土"
	ElementMetal Element = "金"
	ElementWater Element = "水"
)

// DerivedTraits 是根据出生年份查表得到的"四柱"画像
// 字段名沿用前端既有的 JSON 约定，不要随意改动
type DerivedTraits struct {
	Key                int      `json:"-"`
	Element            Element  `json:"element"`
	ElementName        string   `json:"element_name"`
	ElementDescription string   `json:"element_description"`
	Personality        string   `json:"personality"`
	GolfStyle          string   `json:"golfStyle"`
	Strengths          []string `json:"strengths"`
	Weaknesses         []string `json:"weakPoints"`
	LuckyColors        []string `json:"luckyElements"`
	LuckyNumbers       []int    `json:"lucky_numbers"`
	Recommendations    []string `json:"recommendations"`
	SajuSummary        string   `json:"sajuSummary"`
}
