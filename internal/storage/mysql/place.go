package mysql

import (
	"context"
	"database/sql"

	"tour_ops/internal/domain"
)

// Restaurants and housings mirror each other: both are city-scoped venues
// with a contact block.

type RestaurantStore struct{ db *sql.DB }

func (s *RestaurantStore) List(ctx context.Context) ([]domain.RestaurantView, error) {
	rows, err := s.db.QueryContext(ctx, listRestaurantsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.RestaurantView{}
	for rows.Next() {
		var rv domain.RestaurantView
		var district, address, officer, cOfficer, cPlace sql.NullString
		err := rows.Scan(&rv.ID, &rv.Restaurant, &rv.City, &rv.CityID,
			&district, &address, &officer, &cOfficer, &cPlace)
		if err != nil {
			return nil, err
		}
		rv.District = nullStr(district)
		rv.Address = nullStr(address)
		rv.Officer = nullStr(officer)
		rv.ContactOfficer = nullStr(cOfficer)
		rv.ContactRestaurant = nullStr(cPlace)
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (s *RestaurantStore) Insert(ctx context.Context, r domain.Restaurant) (int64, error) {
	res, err := s.db.ExecContext(ctx, insertRestaurantSQL,
		r.Restaurant, r.CityID, argStr(r.District), argStr(r.Address),
		argStr(r.Officer), argStr(r.ContactOfficer), argStr(r.ContactRestaurant))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *RestaurantStore) Update(ctx context.Context, id int64, r domain.Restaurant) (int64, error) {
	res, err := s.db.ExecContext(ctx, updateRestaurantSQL,
		r.Restaurant, r.CityID, argStr(r.District), argStr(r.Address),
		argStr(r.Officer), argStr(r.ContactOfficer), argStr(r.ContactRestaurant),
		id)
	if err != nil {
		return 0, err
	}
	return affected(res)
}

func (s *RestaurantStore) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, deleteRestaurantSQL, id)
	if err != nil {
		return 0, err
	}
	return affected(res)
}

type HousingStore struct{ db *sql.DB }

func (s *HousingStore) List(ctx context.Context) ([]domain.HousingView, error) {
	rows, err := s.db.QueryContext(ctx, listHousingsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.HousingView{}
	for rows.Next() {
		var hv domain.HousingView
		var district, address, officer, cOfficer, cPlace sql.NullString
		err := rows.Scan(&hv.ID, &hv.Housing, &hv.City, &hv.CityID,
			&district, &address, &officer, &cOfficer, &cPlace)
		if err != nil {
			return nil, err
		}
		hv.District = nullStr(district)
		hv.Address = nullStr(address)
		hv.Officer = nullStr(officer)
		hv.ContactOfficer = nullStr(cOfficer)
		hv.ContactHousing = nullStr(cPlace)
		out = append(out, hv)
	}
	return out, rows.Err()
}

func (s *HousingStore) Insert(ctx context.Context, h domain.Housing) (int64, error) {
	res, err := s.db.ExecContext(ctx, insertHousingSQL,
		h.Housing, h.CityID, argStr(h.District), argStr(h.Address),
		argStr(h.Officer), argStr(h.ContactOfficer), argStr(h.ContactHousing))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *HousingStore) Update(ctx context.Context, id int64, h domain.Housing) (int64, error) {
	res, err := s.db.ExecContext(ctx, updateHousingSQL,
		h.Housing, h.CityID, argStr(h.District), argStr(h.Address),
		argStr(h.Officer), argStr(h.ContactOfficer), argStr(h.ContactHousing),
		id)
	if err != nil {
		return 0, err
	}
	return affected(res)
}

func (s *HousingStore) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, deleteHousingSQL, id)
	if err != nil {
		return 0, err
	}
	return affected(res)
}
