package saju

import (
	"slices"
	"strconv"

	"github.com/leon37/GolfFortune/internal/model"
)

// 查表缺省值。任何未登记的键都落到这里
const (
	DefaultClub  = "아이언"
	DefaultBall  = "타이틀리스트 Pro V1"
	DefaultTPO   = "청색 상의, 하얀색 하의"
	DefaultHole  = "5번홀"
	DefaultItem  = "거리측정기"
	DefaultColor = "파랑"
)

// 按优先级排列：先命中的强项决定幸运球杆
var clubByStrength = []struct {
	tag  string
	club string
}{
	{TagDriver, "드라이버"},
	{TagIron, "아이언"},
	{TagPutting, "퍼터"},
	{TagWedge, "웨지"},
}

var ballByColor = map[string]string{
	"파랑": "타이틀리스트 Pro V1",
	"빨강": "테일러메이드 TP5",
	"초록": "브리지스톤 B XS",
	"노랑": "콜웨이 ERC Soft",
	"검정": "윌슨 Staff Model",
	"흰색": "스릭슨 Z-STAR",
	"주황": "테일러메이드 TP5",
	"갈색": "콜웨이 ERC Soft",
	"회색": "스릭슨 Z-STAR",
	"보라": "윌슨 Staff Model",
}

var tpoByColor = map[string]string{
	"파랑": "청색 상의, 하얀색 하의",
	"빨강": "빨간색 상의, 검은색 하의",
	"초록": "초록색 상의, 하얀색 하의",
	"노랑": "노란색 상의, 검은색 하의",
	"검정": "검은색 상의, 하얀색 하의",
	"흰색": "하얀색 상의, 검은색 하의",
	"주황": "주황색 상의, 하얀색 하의",
	"갈색": "갈색 상의, 하얀색 하의",
	"회색": "회색 상의, 검은색 하의",
	"보라": "보라색 상의, 하얀색 하의",
}

var itemByElement = map[model.Element]string{
	model.ElementWood:  "거리측정기",
	model.ElementFire:  "골프 모자",
	model.ElementEarth: "골프 장갑",
	model.ElementMetal: "골프 시계",
	model.ElementWater: "골프 우산",
}

// LuckyClub 由强项决定
func LuckyClub(strengths []string) string {
	for _, c := range clubByStrength {
		if slices.Contains(strengths, c.tag) {
			return c.club
		}
	}
	return DefaultClub
}

func dominantColor(colors []string) string {
	if len(colors) == 0 || colors[0] == "" {
		return DefaultColor
	}
	return colors[0]
}

// LuckyBall 由第一个幸运色决定
func LuckyBall(colors []string) string {
	if ball, ok := ballByColor[dominantColor(colors)]; ok {
		return ball
	}
	return DefaultBall
}

// LuckyTPO 由第一个幸运色决定穿搭
func LuckyTPO(colors []string) string {
	if tpo, ok := tpoByColor[dominantColor(colors)]; ok {
		return tpo
	}
	return DefaultTPO
}

// LuckyHole 取第一个幸运数字
func LuckyHole(numbers []int) string {
	if len(numbers) == 0 {
		return DefaultHole
	}
	return strconv.Itoa(numbers[0]) + "번홀"
}

// LuckyItem 由五行决定
func LuckyItem(element model.Element) string {
	if item, ok := itemByElement[element]; ok {
		return item
	}
	return DefaultItem
}

// Colors 返回表里出现过的全部幸运色
func Colors() []string {
	var all []string
	for key := 0; key < Keys; key++ {
		for _, c := range rows[key].luckyColors {
			if !slices.Contains(all, c) {
				all = append(all, c)
			}
		}
	}
	return all
}
