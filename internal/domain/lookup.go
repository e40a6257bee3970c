package domain

// LookupRow is one row of a flat id→label reference table (airports,
// currencies, nationalities, genders, cities, languages, payment methods).
type LookupRow struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}
