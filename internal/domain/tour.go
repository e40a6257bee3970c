package domain

// Tour is a template itinerary referenced by teams.
type Tour struct {
	Tour           string `json:"tour"`
	CityID         int64  `json:"cityId"`
	NumberOfDays   int    `json:"numberOfDays"`
	NumberOfNights int    `json:"numberOfNights"`
}

type TourView struct {
	ID int64 `json:"id"`
	Tour
}

// TourWithCity resolves the city reference to its label.
type TourWithCity struct {
	ID             int64  `json:"id"`
	Tour           string `json:"tour"`
	City           string `json:"city"`
	CityID         int64  `json:"cityId"`
	NumberOfDays   int    `json:"numberOfDays"`
	NumberOfNights int    `json:"numberOfNights"`
}
