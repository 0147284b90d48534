package saju

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leon37/GolfFortune/internal/model"
)

func TestRowIsTotal(t *testing.T) {
	for key := 0; key < Keys; key++ {
		traits := Row(key)
		assert.Equal(t, key, traits.Key)
		assert.NotEmpty(t, traits.Element, "key %d", key)
		assert.NotEmpty(t, traits.ElementName, "key %d", key)
		assert.NotEmpty(t, traits.ElementDescription, "key %d", key)
		assert.NotEmpty(t, traits.Personality, "key %d", key)
		assert.NotEmpty(t, traits.GolfStyle, "key %d", key)
		assert.NotEmpty(t, traits.SajuSummary, "key %d", key)
		assert.Len(t, traits.LuckyNumbers, 2, "key %d", key)
		for _, list := range [][]string{traits.Strengths, traits.Weaknesses, traits.LuckyColors, traits.Recommendations} {
			require.NotEmpty(t, list, "key %d", key)
			for _, v := range list {
				assert.NotEmpty(t, v, "key %d", key)
			}
		}
	}
}

func TestRowElementsAreDistinct(t *testing.T) {
	seen := map[model.Element]bool{}
	for key := 0; key < Keys; key++ {
		seen[Row(key).Element] = true
	}
	assert.Len(t, seen, Keys)
}

func TestDeriveUsesYearModFive(t *testing.T) {
	traits, err := Derive("1990-05-15", "", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, traits.Key)
	assert.Equal(t, model.ElementWood, traits.Element)
	assert.Equal(t, "木 - 나무의 기운", traits.ElementName)
	assert.Equal(t, "활발하고 도전적", traits.Personality)
	assert.Equal(t, []string{TagDriver, TagIron}, traits.Strengths)
	assert.Equal(t, []int{1, 6}, traits.LuckyNumbers)
	assert.Equal(t, "木 오행의 기운을 가진 활발하고 도전적한 성격", traits.SajuSummary)

	traits, err = Derive("1985.08.22", "13:00", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, traits.Key)

	traits, err = Derive("1999-10-24", "13:00", nil)
	require.NoError(t, err)
	assert.Equal(t, 4, traits.Key)
	assert.Equal(t, model.ElementWater, traits.Element)
	assert.Equal(t, []int{5, 10}, traits.LuckyNumbers)
}

func TestDeriveFallsBackToDefaultRow(t *testing.T) {
	for _, in := range []string{"", "yesterday", "1990-13-45"} {
		traits, err := Derive(in, "", nil)
		require.ErrorIs(t, err, ErrInvalidBirthDate)
		assert.Equal(t, DefaultTraits(), traits)
	}
}

func TestRowReturnsCopies(t *testing.T) {
	a := Row(2)
	a.Strengths[0] = "changed"
	assert.Equal(t, TagWedge, Row(2).Strengths[0])
}
