package saju

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leon37/GolfFortune/internal/model"
)

func TestEveryTableColorHasBallAndTPO(t *testing.T) {
	colors := Colors()
	assert.Len(t, colors, 10)
	for _, c := range colors {
		_, ok := ballByColor[c]
		assert.True(t, ok, "ball for %s", c)
		_, ok = tpoByColor[c]
		assert.True(t, ok, "tpo for %s", c)
	}
}

func TestLuckyClubPriority(t *testing.T) {
	assert.Equal(t, "드라이버", LuckyClub([]string{TagIron, TagDriver}))
	assert.Equal(t, "아이언", LuckyClub([]string{TagPutting, TagIron}))
	assert.Equal(t, "퍼터", LuckyClub([]string{TagWedge, TagPutting}))
	assert.Equal(t, "웨지", LuckyClub([]string{TagWedge}))
	assert.Equal(t, DefaultClub, LuckyClub(nil))
	assert.Equal(t, DefaultClub, LuckyClub([]string{TagMental}))
}

func TestLuckyLookupDefaults(t *testing.T) {
	assert.Equal(t, DefaultBall, LuckyBall(nil))
	assert.Equal(t, DefaultBall, LuckyBall([]string{"무지개"}))
	assert.Equal(t, DefaultTPO, LuckyTPO([]string{"무지개"}))
	assert.Equal(t, "빨간색 상의, 검은색 하의", LuckyTPO([]string{"빨강", "주황"}))
	assert.Equal(t, "윌슨 Staff Model", LuckyBall([]string{"검정"}))
	assert.Equal(t, DefaultHole, LuckyHole(nil))
	assert.Equal(t, "3번홀", LuckyHole([]int{3, 8}))
	assert.Equal(t, "골프 우산", LuckyItem(model.ElementWater))
	assert.Equal(t, DefaultItem, LuckyItem("?"))
}
