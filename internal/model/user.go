package model

// UserProfile 是前端提交的用户原始信息，只在一次请求内存在
type UserProfile struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	BirthDate   string `json:"birthDate"`
	BirthTime   string `json:"birthTime,omitempty"`
	Gender      string `json:"gender"`
	// Handicap 为 nil 表示用户没有填写，和 0 不同
	Handicap    *int   `json:"handicap,omitempty"`
	CountryClub string `json:"countryClub,omitempty"`

	IronBrand   string `json:"ironBrand,omitempty"`
	DriverBrand string `json:"driverBrand,omitempty"`
	WedgeBrand  string `json:"wedgeBrand,omitempty"`
	PutterBrand string `json:"putterBrand,omitempty"`
	BallBrand   string `json:"ballBrand,omitempty"`

	Extra string `json:"extra,omitempty"`
}

// HandicapValue 返回差点和是否填写
func (u UserProfile) HandicapValue() (int, bool) {
	if u.Handicap == nil {
		return 0, false
	}
	return *u.Handicap, true
}
