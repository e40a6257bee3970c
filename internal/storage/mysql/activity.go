package mysql

import (
	"context"
	"database/sql"

	"tour_ops/internal/domain"
)

type ActivityStore struct{ db *sql.DB }

func (s *ActivityStore) ListByTeam(ctx context.Context, teamID int64) ([]domain.ActivityView, error) {
	rows, err := s.db.QueryContext(ctx, listActivitiesSQL, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ActivityView{}
	for rows.Next() {
		var av domain.ActivityView
		var (
			when             sql.NullString
			hotelID          sql.NullInt64
			hotel            sql.NullString
			plate, driver    sql.NullString
			vehicleID        sql.NullInt64
			vehicle          sql.NullString
			restaurantID     sql.NullInt64
			restaurant       sql.NullString
			airportID        sql.NullInt64
			airport          sql.NullString
		)
		err := rows.Scan(
			&av.ID, &av.Activity, &when, &av.TeamID,
			&hotelID, &hotel,
			&plate, &driver,
			&vehicleID, &vehicle,
			&restaurantID, &restaurant,
			&airportID, &airport,
		)
		if err != nil {
			return nil, err
		}
		av.ActivityTime = nullStr(when)
		av.HotelID = nullI64(hotelID)
		av.Hotel = nullStr(hotel)
		av.PlateOfVehicle = nullStr(plate)
		av.ContactOfDriver = nullStr(driver)
		av.CompanyOfVehicleID = nullI64(vehicleID)
		av.CompanyOfVehicle = nullStr(vehicle)
		av.RestaurantID = nullI64(restaurantID)
		av.Restaurant = nullStr(restaurant)
		av.AirportID = nullI64(airportID)
		av.Airport = nullStr(airport)
		out = append(out, av)
	}
	return out, rows.Err()
}

func (s *ActivityStore) Insert(ctx context.Context, a domain.Activity) (int64, error) {
	res, err := s.db.ExecContext(ctx, insertActivitySQL,
		a.Activity, a.TeamID, argStr(a.ActivityTime), argI64(a.HotelID),
		argStr(a.PlateOfVehicle), argStr(a.ContactOfDriver),
		argI64(a.CompanyOfVehicle), argI64(a.RestaurantID), argI64(a.AirportID))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *ActivityStore) Update(ctx context.Context, id int64, a domain.Activity) (int64, error) {
	res, err := s.db.ExecContext(ctx, updateActivitySQL,
		a.Activity, argStr(a.ActivityTime), argI64(a.HotelID),
		argStr(a.PlateOfVehicle), argStr(a.ContactOfDriver),
		argI64(a.CompanyOfVehicle), argI64(a.RestaurantID), argI64(a.AirportID),
		id)
	if err != nil {
		return 0, err
	}
	return affected(res)
}

func (s *ActivityStore) DeleteScoped(ctx context.Context, id, teamID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, deleteActivityScopedSQL, id, teamID)
	if err != nil {
		return 0, err
	}
	return affected(res)
}
