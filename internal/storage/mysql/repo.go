package mysql

import (
	"database/sql"

	"tour_ops/internal/domain"
)

// NewStores wires every repository onto one explicitly passed-in handle.
// The handle's lifecycle (open at startup, close at shutdown) belongs to the
// caller.
func NewStores(db *sql.DB) domain.Stores {
	return domain.Stores{
		Teams:       &TeamStore{db: db},
		Activities:  &ActivityStore{db: db},
		Tourists:    &TouristStore{db: db},
		Guides:      &GuideStore{db: db},
		Tours:       &TourStore{db: db},
		Restaurants: &RestaurantStore{db: db},
		Housings:    &HousingStore{db: db},
		Vehicles:    &VehicleStore{db: db},

		Cities:         NewLookupStore(db, "cities", "city"),
		Nationalities:  NewLookupStore(db, "nationalities", "nationality"),
		Currencies:     NewLookupStore(db, "currencies", "currency"),
		Airports:       NewLookupStore(db, "airports", "airport"),
		Languages:      NewLookupStore(db, "languages", "language"),
		Genders:        NewLookupStore(db, "genders", "gender"),
		PaymentMethods: NewLookupStore(db, "payment_methods", "method"),
	}
}

// ---- scan/arg helpers ----

func nullStr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullI64(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	n := ni.Int64
	return &n
}

func nullInt(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	n := int(ni.Int64)
	return &n
}

func nullBool(nb sql.NullBool) *bool {
	if !nb.Valid {
		return nil
	}
	b := nb.Bool
	return &b
}

func argStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func argI64(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func affected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}
