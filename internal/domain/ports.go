package domain

import "context"

// Update and Delete return the affected-row count; callers map zero rows to
// the failure outcome. Reads return ErrNotFound when no row matches.

type TeamStore interface {
	GetDetail(ctx context.Context, slug string) (TeamDetail, error)
	RefBySlug(ctx context.Context, slug string) (TeamRef, error)
	// ListToday returns teams running on the given date. A non-nil guideID
	// restricts rows to that guide and omits guide attribution fields.
	ListToday(ctx context.Context, today string, guideID *int64) ([]TeamListItem, error)
	ListMain(ctx context.Context, q MainQuery) ([]TeamListItem, int64, error)
	Filter(ctx context.Context, f TeamFilter) ([]TeamListItem, int64, error)
	Insert(ctx context.Context, t Team) (CreatedTeam, error)
	Update(ctx context.Context, slug string, t Team) (int64, error)
	Delete(ctx context.Context, slug string) (int64, error)
}

type ActivityStore interface {
	ListByTeam(ctx context.Context, teamID int64) ([]ActivityView, error)
	Insert(ctx context.Context, a Activity) (int64, error)
	Update(ctx context.Context, id int64, a Activity) (int64, error)
	// DeleteScoped deletes an activity only when it belongs to the team.
	DeleteScoped(ctx context.Context, id, teamID int64) (int64, error)
}

type TouristStore interface {
	Get(ctx context.Context, id int64) (TouristView, error)
	ListByTeam(ctx context.Context, teamID int64) ([]TeamTourist, error)
	Update(ctx context.Context, id int64, t Tourist, p PaymentUpdate) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	BeginEnrollment(ctx context.Context) (EnrollmentTx, error)
}

// EnrollmentTx is the scoped unit of work for the three-table tourist write.
// Rollback after Commit is a no-op.
type EnrollmentTx interface {
	FindTouristByPassport(ctx context.Context, passportNo string) (int64, bool, error)
	InsertTourist(ctx context.Context, t Tourist) (int64, error)
	LinkTouristTeam(ctx context.Context, touristID, teamID int64) error
	InsertPayment(ctx context.Context, teamID, touristID, amount, currencyID, paymentMethodID int64, isPayed bool) error
	Commit() error
	Rollback() error
}

type GuideStore interface {
	// GetByUsername returns the guide; a non-nil onlyID additionally requires
	// the row id to match (self-only access for non-admin callers).
	GetByUsername(ctx context.Context, username string, onlyID *int64) (GuideDetail, error)
	GetForLogin(ctx context.Context, username string) (LoginInfo, error)
	ListDetailed(ctx context.Context) ([]GuideDetail, error)
	Roster(ctx context.Context) ([]GuideRef, error)
	Insert(ctx context.Context, g GuideInput, passwordHash string) error
	Update(ctx context.Context, id int64, g GuideInput, passwordHash string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type TourStore interface {
	List(ctx context.Context) ([]TourView, error)
	ListWithCity(ctx context.Context) ([]TourWithCity, error)
	Insert(ctx context.Context, t Tour) error
	Update(ctx context.Context, id int64, t Tour) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type RestaurantStore interface {
	List(ctx context.Context) ([]RestaurantView, error)
	Insert(ctx context.Context, r Restaurant) (int64, error)
	Update(ctx context.Context, id int64, r Restaurant) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type HousingStore interface {
	List(ctx context.Context) ([]HousingView, error)
	Insert(ctx context.Context, h Housing) (int64, error)
	Update(ctx context.Context, id int64, h Housing) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type VehicleStore interface {
	List(ctx context.Context) ([]VehicleView, error)
	Refs(ctx context.Context) ([]VehicleRef, error)
	Insert(ctx context.Context, v Vehicle) (int64, error)
	Update(ctx context.Context, id int64, v Vehicle) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// LookupStore is the generic repository over a flat id→label table.
type LookupStore interface {
	List(ctx context.Context) ([]LookupRow, error)
	Insert(ctx context.Context, value string) (int64, error)
	Update(ctx context.Context, id int64, value string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Stores bundles every repository behind one injectable handle.
type Stores struct {
	Teams       TeamStore
	Activities  ActivityStore
	Tourists    TouristStore
	Guides      GuideStore
	Tours       TourStore
	Restaurants RestaurantStore
	Housings    HousingStore
	Vehicles    VehicleStore

	Cities         LookupStore
	Nationalities  LookupStore
	Currencies     LookupStore
	Airports       LookupStore
	Languages      LookupStore
	Genders        LookupStore
	PaymentMethods LookupStore
}
