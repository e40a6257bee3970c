package domain

// GuideInput is the write model for a guide; the password travels separately
// and is always hashed before it reaches storage.
type GuideInput struct {
	Name          string  `json:"name"`
	Username      string  `json:"username"`
	LanguageID    int64   `json:"languageId"`
	Birth         *string `json:"birth"`
	NationalityID int64   `json:"nationalityId"`
	PassportNo    string  `json:"passportNo"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Intimate      *string `json:"intimate"`
	Intimacy      *string `json:"intimacy"`
	IntimatePhone *string `json:"intimatePhone"`
	IsAdmin       bool    `json:"isAdmin"`
}

// GuideDetail is the read view with language and nationality labels.
// The password hash is never part of a read view.
type GuideDetail struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Username      string  `json:"username"`
	Language      *string `json:"language"`
	LanguageID    *int64  `json:"languageId"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	PassportNo    string  `json:"passportNo"`
	Nationality   *string `json:"nationality"`
	NationalityID *int64  `json:"nationalityId"`
	Birth         *string `json:"birth"`
	Intimate      *string `json:"intimate"`
	Intimacy      *string `json:"intimacy"`
	IntimatePhone *string `json:"intimatePhone"`
	IsAdmin       bool    `json:"isAdmin"`
}

// GuideRef is the roster projection bundled into admin listings.
type GuideRef struct {
	ID    int64  `json:"id"`
	Guide string `json:"guide"`
}

// LoginInfo is the credential row used by the login flow only.
type LoginInfo struct {
	ID           int64
	Name         string
	Username     string
	PasswordHash string
	IsAdmin      bool
}
