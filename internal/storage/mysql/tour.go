package mysql

import (
	"context"
	"database/sql"

	"tour_ops/internal/domain"
)

type TourStore struct{ db *sql.DB }

func (s *TourStore) List(ctx context.Context) ([]domain.TourView, error) {
	rows, err := s.db.QueryContext(ctx, listToursSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.TourView{}
	for rows.Next() {
		var tv domain.TourView
		if err := rows.Scan(&tv.ID, &tv.Tour.Tour, &tv.CityID, &tv.NumberOfDays, &tv.NumberOfNights); err != nil {
			return nil, err
		}
		out = append(out, tv)
	}
	return out, rows.Err()
}

func (s *TourStore) ListWithCity(ctx context.Context) ([]domain.TourWithCity, error) {
	rows, err := s.db.QueryContext(ctx, listToursWithCitySQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.TourWithCity{}
	for rows.Next() {
		var tc domain.TourWithCity
		if err := rows.Scan(&tc.ID, &tc.Tour, &tc.City, &tc.CityID, &tc.NumberOfDays, &tc.NumberOfNights); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

func (s *TourStore) Insert(ctx context.Context, t domain.Tour) error {
	_, err := s.db.ExecContext(ctx, insertTourSQL, t.Tour, t.CityID, t.NumberOfDays, t.NumberOfNights)
	return err
}

func (s *TourStore) Update(ctx context.Context, id int64, t domain.Tour) (int64, error) {
	res, err := s.db.ExecContext(ctx, updateTourSQL, t.Tour, t.CityID, t.NumberOfDays, t.NumberOfNights, id)
	if err != nil {
		return 0, err
	}
	return affected(res)
}

func (s *TourStore) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, deleteTourSQL, id)
	if err != nil {
		return 0, err
	}
	return affected(res)
}
