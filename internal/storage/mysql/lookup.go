package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"tour_ops/internal/domain"
)

// LookupStore is the generic repository over a flat id→label table. Table
// and column names come from compile-time metadata, never from request
// input, so building the statements with Sprintf is safe.
type LookupStore struct {
	db *sql.DB

	listSQL   string
	insertSQL string
	updateSQL string
	deleteSQL string
}

func NewLookupStore(db *sql.DB, table, label string) *LookupStore {
	return &LookupStore{
		db:        db,
		listSQL:   fmt.Sprintf("SELECT id, %s FROM %s ORDER BY id", label, table),
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (?)", table, label),
		updateSQL: fmt.Sprintf("UPDATE %s SET %s = ? WHERE id = ?", table, label),
		deleteSQL: fmt.Sprintf("DELETE FROM %s WHERE id = ?", table),
	}
}

func (s *LookupStore) List(ctx context.Context) ([]domain.LookupRow, error) {
	rows, err := s.db.QueryContext(ctx, s.listSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.LookupRow{}
	for rows.Next() {
		var r domain.LookupRow
		var v sql.NullString
		if err := rows.Scan(&r.ID, &v); err != nil {
			return nil, err
		}
		r.Value = v.String
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *LookupStore) Insert(ctx context.Context, value string) (int64, error) {
	res, err := s.db.ExecContext(ctx, s.insertSQL, value)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *LookupStore) Update(ctx context.Context, id int64, value string) (int64, error) {
	res, err := s.db.ExecContext(ctx, s.updateSQL, value, id)
	if err != nil {
		return 0, err
	}
	return affected(res)
}

func (s *LookupStore) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, s.deleteSQL, id)
	if err != nil {
		return 0, err
	}
	return affected(res)
}
