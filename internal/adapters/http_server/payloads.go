package httpserver

import (
	"encoding/json"
	"net/http"

	"tour_ops/internal/domain"
)

// Validated create payloads. Constraints mirror what the admin forms
// enforce client-side, so a well-behaved client never sees a 400 here.

type loginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type teamPayload struct {
	Team                          string  `json:"team" validate:"required,min=1"`
	TourID                        int64   `json:"tourId" validate:"required"`
	StartsAt                      string  `json:"startsAt" validate:"required"`
	EndsAt                        string  `json:"endsAt" validate:"required"`
	GuideID                       int64   `json:"guideId" validate:"required,gt=0"`
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

func (p teamPayload) toDomain() domain.Team {
	return domain.Team{
		Team:                          p.Team,
		TourID:                        p.TourID,
		StartsAt:                      p.StartsAt,
		EndsAt:                        p.EndsAt,
		GuideID:                       p.GuideID,
		FlightOutwardNo:               p.FlightOutwardNo,
		FlightOutwardDeparture:        p.FlightOutwardDeparture,
		FlightOutwardDepartureAirport: p.FlightOutwardDepartureAirport,
		FlightOutwardLanding:          p.FlightOutwardLanding,
		FlightOutwardLandingAirport:   p.FlightOutwardLandingAirport,
		FlightReturnNo:                p.FlightReturnNo,
		FlightReturnDeparture:         p.FlightReturnDeparture,
		FlightReturnDepartureAirport:  p.FlightReturnDepartureAirport,
		FlightReturnLanding:           p.FlightReturnLanding,
		FlightReturnLandingAirport:    p.FlightReturnLandingAirport,
	}
}

type activityPayload struct {
	Activity         string  `json:"activity" validate:"required"`
	ActivityTime     string  `json:"activityTime" validate:"required"`
	TeamID           int64   `json:"teamId" validate:"required"`
	HotelID          *int64  `json:"hotelId"`
	PlateOfVehicle   *string `json:"plateOfVehicle"`
	ContactOfDriver  *string `json:"contactOfDriver"`
	CompanyOfVehicle *int64  `json:"companyOfVehicleId"`
	RestaurantID     *int64  `json:"restaurantId"`
	AirportID        *int64  `json:"airportId"`
}

func (p activityPayload) toDomain() domain.Activity {
	when := p.ActivityTime
	return domain.Activity{
		Activity:         p.Activity,
		TeamID:           p.TeamID,
		ActivityTime:     &when,
		HotelID:          p.HotelID,
		PlateOfVehicle:   p.PlateOfVehicle,
		ContactOfDriver:  p.ContactOfDriver,
		CompanyOfVehicle: p.CompanyOfVehicle,
		RestaurantID:     p.RestaurantID,
		AirportID:        p.AirportID,
	}
}

type touristPayload struct {
	Name          string  `json:"name"`
	Birth         *string `json:"birth"`
	GenderID      int64   `json:"genderId"`
	NationalityID int64   `json:"nationalityId"`
	PassportNo    string  `json:"passportNo" validate:"omitempty,min=6"`
	Email         string  `json:"email" validate:"omitempty,email,min=5"`
	Phone         string  `json:"phone"`
	Address       *string `json:"address"`
	Intimate      *string `json:"intimate"`
	Intimacy      *string `json:"intimacy"`
	IntimatePhone *string `json:"intimatePhone"`

	TeamID          int64 `json:"teamId" validate:"required,gt=0"`
	Amount          int64 `json:"amount" validate:"required,gt=0"`
	CurrencyID      int64 `json:"currencyId" validate:"required,gt=0"`
	PaymentMethodID int64 `json:"paymentMethodId" validate:"required,gt=0"`
	IsPayed         *bool `json:"isPayed" validate:"required"`
}

func (p touristPayload) toEnrollment() domain.Enrollment {
	return domain.Enrollment{
		Tourist: domain.Tourist{
			Name:          p.Name,
			Birth:         p.Birth,
			GenderID:      p.GenderID,
			NationalityID: p.NationalityID,
			PassportNo:    p.PassportNo,
			Email:         p.Email,
			Phone:         p.Phone,
			Address:       p.Address,
			Intimate:      p.Intimate,
			Intimacy:      p.Intimacy,
			IntimatePhone: p.IntimatePhone,
		},
		TeamID:          p.TeamID,
		Amount:          p.Amount,
		CurrencyID:      p.CurrencyID,
		PaymentMethodID: p.PaymentMethodID,
		IsPayed:         *p.IsPayed,
	}
}

type guidePayload struct {
	Name          string `json:"name" validate:"required,min=2"`
	Username      string `json:"username" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email,min=5"`
	Phone         string `json:"phone" validate:"required"`
	PassportNo    string `json:"passportNo" validate:"required,min=6"`
	Birth         string `json:"birth" validate:"required,min=10"`
	NationalityID int64  `json:"nationalityId" validate:"required"`
	LanguageID    int64  `json:"languageId" validate:"required"`
	Intimate      string `json:"intimate" validate:"required,min=2"`
	IntimatePhone string `json:"intimatePhone" validate:"required"`
	Intimacy      string `json:"intimacy" validate:"required,min=2"`
	IsAdmin       *bool  `json:"isAdmin" validate:"required"`
	Password      string `json:"password" validate:"required,min=8"`
	RePassword    string `json:"rePassword" validate:"required,min=8"`
}

func (p guidePayload) toDomain() domain.GuideInput {
	birth := p.Birth
	return domain.GuideInput{
		Name:          p.Name,
		Username:      p.Username,
		LanguageID:    p.LanguageID,
		Birth:         &birth,
		NationalityID: p.NationalityID,
		PassportNo:    p.PassportNo,
		Email:         p.Email,
		Phone:         p.Phone,
		Intimate:      strPtr(p.Intimate),
		Intimacy:      strPtr(p.Intimacy),
		IntimatePhone: strPtr(p.IntimatePhone),
		IsAdmin:       *p.IsAdmin,
	}
}

type tourPayload struct {
	Tour           string `json:"tour" validate:"required"`
	CityID         int64  `json:"cityId" validate:"required"`
	NumberOfDays   *int   `json:"numberOfDays" validate:"required"`
	NumberOfNights *int   `json:"numberOfNights" validate:"required"`
}

func (p tourPayload) toDomain() domain.Tour {
	return domain.Tour{
		Tour:           p.Tour,
		CityID:         p.CityID,
		NumberOfDays:   *p.NumberOfDays,
		NumberOfNights: *p.NumberOfNights,
	}
}

// Unvalidated update payloads. Updates come from the same admin forms that
// already passed creation validation, so they decode straight to the wire
// shape.

type guideUpdatePayload struct {
	Name          string  `json:"name"`
	Username      string  `json:"username"`
	Password      string  `json:"password"`
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

func (p guideUpdatePayload) toDomain() domain.GuideInput {
	return domain.GuideInput{
		Name:          p.Name,
		Username:      p.Username,
		LanguageID:    p.LanguageID,
		Birth:         p.Birth,
		NationalityID: p.NationalityID,
		PassportNo:    p.PassportNo,
		Email:         p.Email,
		Phone:         p.Phone,
		Intimate:      p.Intimate,
		Intimacy:      p.Intimacy,
		IntimatePhone: p.IntimatePhone,
		IsAdmin:       p.IsAdmin,
	}
}

type touristUpdatePayload struct {
	domain.Tourist
	Amount     *int64 `json:"amount"`
	IsPayed    bool   `json:"isPayed"`
	CurrencyID *int64 `json:"currencyId"`
}

type tourUpdatePayload struct {
	ID int64 `json:"id"`
	domain.Tour
}

type restaurantUpdatePayload struct {
	ID int64 `json:"id"`
	domain.Restaurant
}

type housingUpdatePayload struct {
	ID int64 `json:"id"`
	domain.Housing
}

type vehicleUpdatePayload struct {
	ID int64 `json:"id"`
	domain.Vehicle
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func strPtr(s string) *string { return &s }
