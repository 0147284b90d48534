package prompt

// profileBlock 是各版本共用的用户信息和画像摘要
const profileBlock = `=== 사용자 정보 ===
- 이름: {{.Name}}
- 생년월일: {{.BirthDate}}
- 출생시간: {{.BirthTime}}
- 성별: {{.Gender}}
- 핸디캡: {{.Handicap}}
- 방문 예정 CC: {{.Venue}}
- 사용 장비: 드라이버 {{.DriverBrand}} / 아이언 {{.IronBrand}} / 웨지 {{.WedgeBrand}} / 퍼터 {{.PutterBrand}} / 볼 {{.BallBrand}}
- 추가정보: {{.Extra}}

=== 사주 분석 결과 ===
- 사주: {{.Traits.SajuSummary}}
- 오행: {{.Traits.Element}} ({{.Traits.ElementName}})
- 성격: {{.Traits.Personality}}
- 골프 스타일: {{.Traits.GolfStyle}}
- 강점: {{join .Traits.Strengths}}
- 약점: {{join .Traits.Weaknesses}}
- 행운 요소: {{join .Traits.LuckyColors}}
- 행운의 클럽: {{.LuckyClub}}
- 행운의 볼: {{.LuckyBall}}
- 행운의 TPO: {{.LuckyTPO}}`
