package model

import "time"

// Field 是运势记录里由生成文本抽取的叙述字段
type Field string

const (
	FieldRound    Field = "roundFortune"
	FieldBetting  Field = "bettingFortune"
	FieldStrategy Field = "strategyFortune"
	FieldScore    Field = "scoreFortune"
	FieldCourse   Field = "courseFortune"
	FieldQuote    Field = "quote"
)

// NarrativeFields 按展示顺序列出全部叙述字段
var NarrativeFields = []Field{FieldRound, FieldBetting, FieldStrategy, FieldScore, FieldCourse, FieldQuote}

// FortuneRecord 是调用方依赖的输出契约：所有字段永远存在且非空
type FortuneRecord struct {
	Title           string `json:"title"`
	LuckyClub       string `json:"luckyClub"`
	LuckyBall       string `json:"luckyBall"`
	LuckyHole       string `json:"luckyHole"`
	LuckyItem       string `json:"luckyItem"`
	LuckyTPO        string `json:"luckyTPO"`
	RoundFortune    string `json:"roundFortune"`
	BettingFortune  string `json:"bettingFortune"`
	StrategyFortune string `json:"strategyFortune"`
	ScoreFortune    string `json:"scoreFortune"`
	CourseFortune   string `json:"courseFortune"`
	Quote           string `json:"quote"`
}

func (r *FortuneRecord) slot(f Field) *string {
	switch f {
	case FieldRound:
		return &r.RoundFortune
	case FieldBetting:
		return &r.BettingFortune
	case FieldStrategy:
		return &r.StrategyFortune
	case FieldScore:
		return &r.ScoreFortune
	case FieldCourse:
		return &r.CourseFortune
	case FieldQuote:
		return &r.Quote
	}
	return nil
}

// Set 写入叙述字段，未知字段忽略
func (r *FortuneRecord) Set(f Field, v string) {
	if p := r.slot(f); p != nil {
		*p = v
	}
}

// Get 读取叙述字段
func (r FortuneRecord) Get(f Field) string {
	if p := r.slot(f); p != nil {
		return *p
	}
	return ""
}

// MissingFields 返回值为空的字段名 (JSON 名)
func (r FortuneRecord) MissingFields() []string {
	var missing []string
	check := func(name, v string) {
		if v == "" {
			missing = append(missing, name)
		}
	}
	check("title", r.Title)
	check("luckyClub", r.LuckyClub)
	check("luckyBall", r.LuckyBall)
	check("luckyHole", r.LuckyHole)
	check("luckyItem", r.LuckyItem)
	check("luckyTPO", r.LuckyTPO)
	for _, f := range NarrativeFields {
		check(string(f), r.Get(f))
	}
	return missing
}

// ExportInfo 描述一次落盘/落库的结果
type ExportInfo struct {
	Success      bool      `json:"success"`
	RecordID     string    `json:"recordId,omitempty"`
	JSONPath     string    `json:"jsonPath,omitempty"`
	CSVPath      string    `json:"csvPath,omitempty"`
	ExportFormat string    `json:"exportFormat,omitempty"`
	ExportedAt   time.Time `json:"exportedAt"`
	Error        string    `json:"error,omitempty"`
}

// FortuneResult 是 /api/analyze-user 的响应体
type FortuneResult struct {
	Phase      string        `json:"phase"`
	Analysis   DerivedTraits `json:"analysis"`
	Fortune    FortuneRecord `json:"fortune"`
	ExportInfo ExportInfo    `json:"exportInfo"`
}

// FortuneEntry 是交给持久化 sink 的一条完整记录
type FortuneEntry struct {
	ID         string        `json:"id"`
	Timestamp  time.Time     `json:"timestamp"`
	UserInfo   UserProfile   `json:"userInfo"`
	Analysis   DerivedTraits `json:"analysis"`
	Fortune    FortuneRecord `json:"fortune"`
	ExportInfo ExportInfo    `json:"exportInfo"`
}
