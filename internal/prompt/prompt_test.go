package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leon37/GolfFortune/internal/model"
	"github.com/leon37/GolfFortune/internal/saju"
)

func intPtr(v int) *int { return &v }

func testProfile() model.UserProfile {
	return model.UserProfile{
		Name:        "Test",
		BirthDate:   "1990-05-15",
		Gender:      "male",
		Handicap:    intPtr(12),
		CountryClub: "남서울CC",
		DriverBrand: "핑",
	}
}

func TestBuildEmbedsProfileAndTraits(t *testing.T) {
	traits := saju.Row(0)
	p, err := Build("", testProfile(), traits)
	require.NoError(t, err)

	assert.Contains(t, p.User, "- 이름: Test")
	assert.Contains(t, p.User, "- 생년월일: 1990-05-15")
	assert.Contains(t, p.User, "- 핸디캡: 12")
	assert.Contains(t, p.User, "- 강점: 드라이버, 아이언")
	assert.Contains(t, p.User, "- 오행: 木 (木 - 나무의 기운)")
	assert.Contains(t, p.User, "드라이버 핑 / 아이언 미정")
	assert.Contains(t, p.User, "- 행운의 클럽: 드라이버")

	assert.Contains(t, p.System, "골신")
	assert.Contains(t, p.System, "좋네… 자네 Test의 운세를 보자고 했지?")
	assert.Contains(t, p.System, "1990-05-15생… 낮에 태어난 male라구?")
	assert.NotContains(t, p.System, "모름에 태어난")
	assert.Contains(t, p.User, "- 출생시간: 모름")
	assert.Contains(t, p.System, ":골프를_치는_male: 전반 기류")
	assert.Contains(t, p.System, "허허, 그러니 너무 조급해 말고… [간단한 조언 한 문장]")
	assert.NotContains(t, p.System, "{{")
}

func TestMissingOptionalFieldsRenderMarkers(t *testing.T) {
	p, err := Build(VersionClassic, model.UserProfile{Name: "Kim", BirthDate: "1999-10-24", Gender: "여성"}, saju.Row(4))
	require.NoError(t, err)

	assert.Contains(t, p.User, "- 출생시간: 모름")
	assert.Contains(t, p.User, "- 핸디캡: 모름")
	assert.Contains(t, p.User, "- 방문 예정 CC: 미정")
	assert.Contains(t, p.User, "- 추가정보: 없음")
	assert.Contains(t, p.System, "4. 스코어 운\n[핸디캡 모름 기준의 오늘 목표 스코어]")
}

func TestGolsinAlwaysHidesVenue(t *testing.T) {
	p, err := Build(VersionGolsin, testProfile(), saju.Row(0))
	require.NoError(t, err)
	assert.Contains(t, p.User, "- 방문 예정 CC: 미정")
	assert.NotContains(t, p.User, "남서울CC")

	p, err = Build(VersionClassic, testProfile(), saju.Row(0))
	require.NoError(t, err)
	assert.Contains(t, p.User, "- 방문 예정 CC: 남서울CC")
}

func TestUnknownVersion(t *testing.T) {
	_, err := Build("nope", testProfile(), saju.Row(0))
	require.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestEveryFieldHeaderAppearsInPrompt(t *testing.T) {
	for _, version := range Versions() {
		tpl, err := Lookup(version)
		require.NoError(t, err)
		p, err := Build(version, testProfile(), saju.Row(1))
		require.NoError(t, err)

		for _, f := range model.NarrativeFields {
			s, ok := tpl.Section(f)
			require.True(t, ok, "%s/%s", version, f)
			header := strings.ReplaceAll(s.Header, "{{.Gender}}", "male")
			assert.Contains(t, p.System, header, "%s/%s", version, f)
		}
	}
}

func TestGolsinGreetingUsesBirthTime(t *testing.T) {
	profile := testProfile()
	profile.BirthTime = "14:30"
	p, err := Build(VersionGolsin, profile, saju.Row(0))
	require.NoError(t, err)
	assert.Contains(t, p.System, "1990-05-15생… 14:30에 태어난 male라구?")
	assert.Contains(t, p.User, "- 출생시간: 14:30")
}
