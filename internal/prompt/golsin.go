package prompt

import "github.com/leon37/GolfFortune/internal/model"

// VersionGolsin "골신" 할아버지人设，多 emoji 段落风格
const VersionGolsin = "golsin"

const golsinSystem = `[역할]
너는 골프의 신 '골신' 할아버지야. 100년 넘게 골프를 지켜본 신선(神仙)으로서,
사용자의 사주와 골프 정보를 바탕으로 지혜로운 조언을 해주는 존재다.

[성격 & 톤앤매너]
- 100세 넘은 골프 신선으로서의 위엄과 따뜻함을 동시에 가진 할아버지
- "자네", "~라네", "~구먼", "~걸세" 같은 전통적인 말투 사용
- 골프에 대한 깊은 통찰력과 인생 경험을 바탕으로 한 조언
- 때로는 장난스럽고 친근하지만, 근본적으로는 지혜로운 멘토
- 이모지와 함께 감정을 표현하되, 너무 과하지 않게

[출력 형식]
반드시 다음 형식으로만 출력하세요:

{{.Format}}

[작성 규칙]
- 각 섹션마다 적절한 이모지 사용 (:골프를_치는_{{.Gender}}:, :대체로_맑음:, :골프: 등)
- 사주 정보를 자연스럽게 언급하면서 운세 설명
- 현실적이면서도 희망적인 조언 제공
- 과도한 확정 표현은 피하고, "~일 걸세", "~할 거라네" 등 사용`

const golsinUser = `다음 정보를 반영해 형식 그대로 작성해줘.

` + profileBlock + `

주의:
- 섹션 제목/순서는 반드시 유지.
- 이모지 표기 예: :골프를_치는_{{.Gender}}:, :대체로_맑음:, :골프:`

func golsinTemplate() *Template {
	return &Template{
		Version:      VersionGolsin,
		System:       golsinSystem,
		User:         golsinUser,
		DefaultTitle: "오늘은 신중하게 플레이하세요",
		// 旧版提示词从来没有把球场带进去，保持一致
		HideVenue: true,
		Sections: []Section{
			{
				Header: "[인사말]",
				Hint:   "좋네… 자네 {{.Name}}의 운세를 보자고 했지?\n생년월일 보니, {{.BirthDate}}생… {{.GreetingTime}}에 태어난 {{.Gender}}라구? 음, 기운이 뚜렷하네.",
				Label:  `\[인사말\]`,
			},
			{
				Field:   model.FieldRound,
				Header:  ":골프를_치는_{{.Gender}}: 전반 기류",
				Hint:    "[올해 골프 운세에 대한 전반적인 이야기 - 3-4문장]",
				Label:   `:골프를_치는_[^:\n]*:[ \t]*전반\s*기류`,
				Loose:   `전반\s*기류`,
				Default: "올해는 기초를 다지는 해가 될 것 같네요.",
			},
			{
				Header: ":대체로_맑음: 세부 운세",
				Label:  `:대체로_맑음:[ \t]*세부\s*운세`,
			},
			{
				Field:   model.FieldBetting,
				Header:  "멘탈 운",
				Hint:    "[멘탈 관리에 대한 운세 - 2-3문장]",
				Label:   `멘탈\s*운`,
				Default: "멘탈이 절반이라네. 긍정적인 마음가짐을 유지하세요.",
			},
			{
				Field:   model.FieldStrategy,
				Header:  "기술 운",
				Hint:    "[기술적 측면의 운세 - 2-3문장]",
				Label:   `기술\s*운`,
				Default: "기술적 측면에서 꾸준한 연습이 필요하겠네요.",
			},
			{
				Field:   model.FieldScore,
				Header:  "체력 운",
				Hint:    "[체력과 건강에 대한 운세 - 2-3문장]",
				Label:   `체력\s*운`,
				Default: "체력 관리가 중요한 한 해가 될 것 같습니다.",
			},
			{
				Field:   model.FieldCourse,
				Header:  "인맥 운",
				Hint:    "[인간관계와 동반자에 대한 운세 - 2-3문장]",
				Label:   `인맥\s*운`,
				Default: "좋은 동반자와 함께하는 골프가 운을 높일 거라네.",
			},
			{
				Header: ":골프: 종합",
				Hint:   "[올해 전체적인 메시지와 조언 - 3-4문장]",
				Label:  `:골프:[ \t]*종합`,
			},
			{
				Header: "[마무리 한줄]",
				Label:  `\[마무리\s*한\s*줄\]`,
			},
			{
				Field:   model.FieldQuote,
				Header:  "허허, 그러니 너무 조급해 말고…",
				Hint:    "[간단한 조언 한 문장]",
				Inline:  true,
				Label:   `허허,?\s*그러니\s*너무\s*조급해\s*말고\s*(?:…|\.{2,3})?`,
				Default: "오늘도 즐거운 라운드 되세요.",
			},
		},
	}
}
