package mysql

import (
	"context"
	"database/sql"

	"tour_ops/internal/domain"
)

type VehicleStore struct{ db *sql.DB }

func (s *VehicleStore) List(ctx context.Context) ([]domain.VehicleView, error) {
	rows, err := s.db.QueryContext(ctx, listVehiclesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.VehicleView{}
	for rows.Next() {
		var vv domain.VehicleView
		var company, cCompany, officer, cOfficer sql.NullString
		if err := rows.Scan(&vv.ID, &company, &cCompany, &officer, &cOfficer); err != nil {
			return nil, err
		}
		vv.Company = nullStr(company)
		vv.ContactCompany = nullStr(cCompany)
		vv.Officer = nullStr(officer)
		vv.ContactOfficer = nullStr(cOfficer)
		out = append(out, vv)
	}
	return out, rows.Err()
}

func (s *VehicleStore) Refs(ctx context.Context) ([]domain.VehicleRef, error) {
	rows, err := s.db.QueryContext(ctx, vehicleRefsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.VehicleRef{}
	for rows.Next() {
		var vr domain.VehicleRef
		var company sql.NullString
		if err := rows.Scan(&vr.ID, &company); err != nil {
			return nil, err
		}
		vr.Company = nullStr(company)
		out = append(out, vr)
	}
	return out, rows.Err()
}

func (s *VehicleStore) Insert(ctx context.Context, v domain.Vehicle) (int64, error) {
	res, err := s.db.ExecContext(ctx, insertVehicleSQL,
		argStr(v.Company), argStr(v.ContactCompany), argStr(v.Officer), argStr(v.ContactOfficer))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *VehicleStore) Update(ctx context.Context, id int64, v domain.Vehicle) (int64, error) {
	res, err := s.db.ExecContext(ctx, updateVehicleSQL,
		argStr(v.Company), argStr(v.ContactCompany), argStr(v.Officer), argStr(v.ContactOfficer), id)
	if err != nil {
		return 0, err
	}
	return affected(res)
}

func (s *VehicleStore) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, deleteVehicleSQL, id)
	if err != nil {
		return 0, err
	}
	return affected(res)
}
