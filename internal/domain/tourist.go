package domain

// Tourist is the write model for a traveler profile. The passport number is
// the natural dedup key across teams.
type Tourist struct {
	Name          string  `json:"name"`
	Birth         *string `json:"birth"`
	GenderID      int64   `json:"genderId"`
	NationalityID int64   `json:"nationalityId"`
	PassportNo    string  `json:"passportNo"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       *string `json:"address"`
	Intimate      *string `json:"intimate"`
	Intimacy      *string `json:"intimacy"`
	IntimatePhone *string `json:"intimatePhone"`
}

// TouristView is the single-tourist read with gender and nationality labels.
type TouristView struct {
	Name          string  `json:"name"`
	Birth         *string `json:"birth"`
	Gender        *string `json:"gender"`
	GenderID      *int64  `json:"genderId"`
	Nationality   *string `json:"nationality"`
	NationalityID *int64  `json:"nationalityId"`
	PassportNo    string  `json:"passportNo"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       *string `json:"address"`
	Intimate      *string `json:"intimate"`
	Intimacy      *string `json:"intimacy"`
	IntimatePhone *string `json:"intimatePhone"`
}

// TeamTourist is one row of a team's roster: the tourist profile joined with
// that team's payment record.
type TeamTourist struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Birth         *string `json:"birth"`
	GenderID      *int64  `json:"genderId"`
	Gender        *string `json:"gender"`
	NationalityID *int64  `json:"nationalityId"`
	Nationality   *string `json:"nationality"`
	PassportNo    string  `json:"passportNo"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       *string `json:"address"`
	Intimate      *string `json:"intimate"`
	Intimacy      *string `json:"intimacy"`
	IntimatePhone *string `json:"intimatePhone"`
	Amount        *int64  `json:"amount"`
	IsPayed       *bool   `json:"isPayed"`
	Currency      *string `json:"currency"`
	CurrencyID    *int64  `json:"currencyId"`
	PaymentMethod *string `json:"paymentMethod"`
	PaymentMethodID *int64 `json:"paymentMethodId"`
}

// Enrollment attaches a tourist to a team together with the payment record.
// The tourist row is reused when the passport number is already known.
type Enrollment struct {
	Tourist         Tourist
	TeamID          int64
	Amount          int64
	CurrencyID      int64
	PaymentMethodID int64
	IsPayed         bool
}

// PaymentUpdate carries the mutable payment fields of a tourist update.
type PaymentUpdate struct {
	Amount     *int64 `json:"amount"`
	IsPayed    bool   `json:"isPayed"`
	CurrencyID *int64 `json:"currencyId"`
}
