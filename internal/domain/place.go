package domain

// Restaurant/Housing carry a city reference plus contact metadata; Vehicle is
// an operator company with contacts.

type Restaurant struct {
	Restaurant        string  `json:"restaurant"`
	CityID            int64   `json:"cityId"`
	District          *string `json:"district"`
	Address           *string `json:"address"`
	Officer           *string `json:"officer"`
	ContactOfficer    *string `json:"contactOfficer"`
	ContactRestaurant *string `json:"contactRestaurant"`
}

type RestaurantView struct {
	ID                int64   `json:"id"`
	Restaurant        string  `json:"restaurant"`
	City              string  `json:"city"`
	CityID            int64   `json:"cityId"`
	District          *string `json:"district"`
	Address           *string `json:"address"`
	Officer           *string `json:"officer"`
	ContactOfficer    *string `json:"contactOfficer"`
	ContactRestaurant *string `json:"contactRestaurant"`
}

type Housing struct {
	Housing        string  `json:"housing"`
	CityID         int64   `json:"cityId"`
	District       *string `json:"district"`
	Address        *string `json:"address"`
	Officer        *string `json:"officer"`
	ContactOfficer *string `json:"contactOfficer"`
	ContactHousing *string `json:"contactHousing"`
}

type HousingView struct {
	ID             int64   `json:"id"`
	Housing        string  `json:"housing"`
	City           string  `json:"city"`
	CityID         int64   `json:"cityId"`
	District       *string `json:"district"`
	Address        *string `json:"address"`
	Officer        *string `json:"officer"`
	ContactOfficer *string `json:"contactOfficer"`
	ContactHousing *string `json:"contactHousing"`
}

type Vehicle struct {
	Company        *string `json:"company"`
	ContactCompany *string `json:"contactCompany"`
	Officer        *string `json:"officer"`
	ContactOfficer *string `json:"contactOfficer"`
}

type VehicleView struct {
	ID int64 `json:"id"`
	Vehicle
}

// VehicleRef is the pick-list projection (id plus company label).
type VehicleRef struct {
	ID      int64   `json:"id"`
	Company *string `json:"company"`
}
