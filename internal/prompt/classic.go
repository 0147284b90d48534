package prompt

import "github.com/leon37/GolfFortune/internal/model"

// VersionClassic 编号段落风格
const VersionClassic = "classic"

const classicSystem = `당신은 골프의 신 '골신' 할아버지입니다. 100년 넘게 골프를 지켜본 신선으로서, 사용자의 오늘 라운드 운세를 봐주세요.

=== 출력 형식 ===
아래 번호와 제목을 그대로 사용하고, 각 항목은 2-3문장으로 작성하세요.

{{.Format}}

=== 작성 규칙 ===
- 할아버지 톤으로 "자네", "~라네", "~구먼", "~걸세" 사용
- 사주 정보를 자연스럽게 언급하면서 운세 설명
- 현실적이면서도 희망적인 조언 제공
- 번호 목록 외의 다른 설명은 덧붙이지 마세요`

const classicUser = profileBlock + `

오늘 {{.Name}}님의 라운드 운세를 위 형식대로 작성해주세요.`

func classicTemplate() *Template {
	return &Template{
		Version:      VersionClassic,
		System:       classicSystem,
		User:         classicUser,
		DefaultTitle: "오늘의 골프 운세",
		Sections: []Section{
			{
				Field:   model.FieldRound,
				Header:  "1. 라운드 운",
				Hint:    "[오늘 라운드 전체의 흐름]",
				Label:   `라운드\s*운`,
				Default: "오늘은 차분하게 플레이하는 것이 중요합니다.",
			},
			{
				Field:   model.FieldBetting,
				Header:  "2. 내기 운",
				Hint:    "[동반자와의 내기에 대한 조언]",
				Label:   `내기\s*운`,
				Default: "작은 내기만 하세요.",
			},
			{
				Field:   model.FieldStrategy,
				Header:  "3. 전략 운",
				Hint:    "[{{.LuckyClub}}을(를) 살린 코스 공략법]",
				Label:   `전략\s*운`,
				Default: "안전한 플레이를 선택하세요.",
			},
			{
				Field:   model.FieldScore,
				Header:  "4. 스코어 운",
				Hint:    "[핸디캡 {{.Handicap}} 기준의 오늘 목표 스코어]",
				Label:   `스코어\s*운`,
				Default: "평소보다 2-3타 높게 잡으세요.",
			},
			{
				Field:   model.FieldCourse,
				Header:  "5. 코스 운",
				Hint:    "[어울리는 코스와 행운의 {{.LuckyHole}}]",
				Label:   `코스\s*운`,
				Default: "평지 코스가 좋겠습니다.",
			},
			{
				Field:   model.FieldQuote,
				Header:  "6. 골신의 한마디",
				Hint:    "[마무리 조언 한 문장]",
				Label:   `골신의\s*한\s*마디`,
				Default: "골프는 마음의 게임입니다.",
			},
		},
	}
}
