package domain

// Team is the write model for a scheduled tour execution. The team name is
// also the routing slug and must be unique. Flight legs are optional and
// independently nullable.
type Team struct {
	Team                          string  `json:"team"`
	TourID                        int64   `json:"tourId"`
	StartsAt                      string  `json:"startsAt"`
	EndsAt                        string  `json:"endsAt"`
	GuideID                       int64   `json:"guideId"`
	FlightOutwardNo               *string `json:"flightOutwardNo"`
	FlightOutwardDeparture        *string `json:"flightOutwardDeparture"`
	FlightOutwardDepartureAirport *int64  `json:"flightOutwardDepartureAirport"`
	FlightOutwardLanding          *string `json:"flightOutwardLanding"`
	FlightOutwardLandingAirport   *int64  `json:"flightOutwardLandingAirport"`
	FlightReturnNo                *string `json:"flightReturnNo"`
	FlightReturnDeparture         *string `json:"flightReturnDeparture"`
	FlightReturnDepartureAirport  *int64  `json:"flightReturnDepartureAirport"`
	FlightReturnLanding           *string `json:"flightReturnLanding"`
	FlightReturnLandingAirport    *int64  `json:"flightReturnLandingAirport"`
}

// CreatedTeam is the row echoed back after an insert.
type CreatedTeam struct {
	ID int64 `json:"id"`
	Team
}

// TeamDetail is the denormalized single-team view: tour, guide and all four
// flight airports resolved to labels in one query.
type TeamDetail struct {
	ID                              int64   `json:"id"`
	Team                            string  `json:"team"`
	Tour                            string  `json:"tour"`
	TourID                          int64   `json:"tourId"`
	NumberOfDays                    int     `json:"numberOfDays"`
	NumberOfNights                  int     `json:"numberOfNights"`
	StartsAt                        string  `json:"startsAt"`
	EndsAt                          string  `json:"endsAt"`
	Guide                           string  `json:"guide"`
	GuideID                         int64   `json:"guideId"`
	GuideSlug                       string  `json:"guideSlug"`
	FlightOutwardNo                 *string `json:"flightOutwardNo"`
	FlightOutwardDeparture          *string `json:"flightOutwardDeparture"`
	FlightOutwardDepartureAirport   *string `json:"flightOutwardDepartureAirport"`
	FlightOutwardDepartureAirportID *int64  `json:"flightOutwardDepartureAirportId"`
	FlightOutwardLanding            *string `json:"flightOutwardLanding"`
	FlightOutwardLandingAirport     *string `json:"flightOutwardLandingAirport"`
	FlightOutwardLandingAirportID   *int64  `json:"flightOutwardLandingAirportId"`
	FlightReturnNo                  *string `json:"flightReturnNo"`
	FlightReturnDeparture           *string `json:"flightReturnDeparture"`
	FlightReturnDepartureAirport    *string `json:"flightReturnDepartureAirport"`
	FlightReturnDepartureAirportID  *int64  `json:"flightReturnDepartureAirportId"`
	FlightReturnLanding             *string `json:"flightReturnLanding"`
	FlightReturnLandingAirport      *string `json:"flightReturnLandingAirport"`
	FlightReturnLandingAirportID    *int64  `json:"flightReturnLandingAirportId"`
}

// TeamListItem is one row of a team listing. Guide attribution fields are
// populated only for admin-shaped listings and omitted otherwise.
type TeamListItem struct {
	ID         int64   `json:"id"`
	Team       string  `json:"team"`
	TourID     *int64  `json:"tourId"`
	Tour       *string `json:"tour"`
	TourDays   *int    `json:"tourDays"`
	TourNights *int    `json:"tourNights"`
	StartsAt   string  `json:"startsAt"`
	EndsAt     string  `json:"endsAt"`
	GuideID    *int64  `json:"guideId,omitempty"`
	Guide      *string `json:"guide,omitempty"`
	GuideSlug  *string `json:"guideSlug,omitempty"`
}

// TeamRef is the slug lookup projection used before scoped sub-queries.
type TeamRef struct {
	ID   int64  `json:"id"`
	Team string `json:"team"`
}

// MainQuery selects a page of teams, newest start first. A non-nil GuideID
// restricts rows to that guide.
type MainQuery struct {
	GuideID  *int64
	Page     int
	PageSize int
}

// TeamFilter combines optional predicates with AND semantics. Today carries
// the caller's current date when the isToday flag was set.
type TeamFilter struct {
	GuideID   *int64
	StartDate *string
	EndDate   *string
	Today     *string
	Upcoming  *string
	Past      *string
	Page      int
	PageSize  int
}
