package domain

// Activity is the write model for one scheduled event of a team.
type Activity struct {
	Activity         string  `json:"activity"`
	TeamID           int64   `json:"teamId"`
	ActivityTime     *string `json:"activityTime"`
	HotelID          *int64  `json:"hotelId"`
	PlateOfVehicle   *string `json:"plateOfVehicle"`
	ContactOfDriver  *string `json:"contactOfDriver"`
	CompanyOfVehicle *int64  `json:"companyOfVehicleId"`
	RestaurantID     *int64  `json:"restaurantId"`
	AirportID        *int64  `json:"airportId"`
}

// ActivityView resolves the optional housing, vehicle company, restaurant
// and airport references to labels.
type ActivityView struct {
	ID                 int64   `json:"id"`
	Activity           string  `json:"activity"`
	ActivityTime       *string `json:"activityTime"`
	TeamID             int64   `json:"teamId"`
	HotelID            *int64  `json:"hotelId"`
	Hotel              *string `json:"hotel"`
	PlateOfVehicle     *string `json:"plateOfVehicle"`
	ContactOfDriver    *string `json:"contactOfDriver"`
	CompanyOfVehicleID *int64  `json:"companyOfVehicleId"`
	CompanyOfVehicle   *string `json:"companyOfVehicle"`
	RestaurantID       *int64  `json:"restaurantId"`
	Restaurant         *string `json:"restaurant"`
	AirportID          *int64  `json:"airportId"`
	Airport            *string `json:"airport"`
}
