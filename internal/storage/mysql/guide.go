package mysql

import (
	"context"
	"database/sql"

	"tour_ops/internal/domain"
)

type GuideStore struct{ db *sql.DB }

func (s *GuideStore) GetByUsername(ctx context.Context, username string, onlyID *int64) (domain.GuideDetail, error) {
	query := guideDetailColsSQL + "WHERE g.username = ?"
	args := []any{username}
	if onlyID != nil {
		query += " AND g.id = ?"
		args = append(args, *onlyID)
	}
	query += " LIMIT 1"

	gd, err := scanGuideDetail(s.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return domain.GuideDetail{}, domain.ErrNotFound
	}
	return gd, err
}

func (s *GuideStore) GetForLogin(ctx context.Context, username string) (domain.LoginInfo, error) {
	var li domain.LoginInfo
	err := s.db.QueryRowContext(ctx, getGuideForLoginSQL, username).
		Scan(&li.ID, &li.Name, &li.Username, &li.PasswordHash, &li.IsAdmin)
	if err == sql.ErrNoRows {
		return domain.LoginInfo{}, domain.ErrNotFound
	}
	return li, err
}

func (s *GuideStore) ListDetailed(ctx context.Context) ([]domain.GuideDetail, error) {
	rows, err := s.db.QueryContext(ctx, guideDetailColsSQL+"ORDER BY g.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.GuideDetail{}
	for rows.Next() {
		gd, err := scanGuideDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, gd)
	}
	return out, rows.Err()
}

func (s *GuideStore) Roster(ctx context.Context) ([]domain.GuideRef, error) {
	rows, err := s.db.QueryContext(ctx, guideRosterSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.GuideRef{}
	for rows.Next() {
		var r domain.GuideRef
		if err := rows.Scan(&r.ID, &r.Guide); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *GuideStore) Insert(ctx context.Context, g domain.GuideInput, passwordHash string) error {
	_, err := s.db.ExecContext(ctx, insertGuideSQL,
		g.Name, g.Username, passwordHash, g.LanguageID, argStr(g.Birth),
		g.NationalityID, g.PassportNo, g.Email, g.Phone,
		argStr(g.Intimate), argStr(g.Intimacy), argStr(g.IntimatePhone), g.IsAdmin)
	return err
}

func (s *GuideStore) Update(ctx context.Context, id int64, g domain.GuideInput, passwordHash string) (int64, error) {
	res, err := s.db.ExecContext(ctx, updateGuideSQL,
		g.Name, g.Username, passwordHash, g.LanguageID, argStr(g.Birth),
		g.NationalityID, g.PassportNo, g.Email, g.Phone,
		argStr(g.Intimate), argStr(g.Intimacy), argStr(g.IntimatePhone), g.IsAdmin,
		id)
	if err != nil {
		return 0, err
	}
	return affected(res)
}

func (s *GuideStore) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, deleteGuideSQL, id)
	if err != nil {
		return 0, err
	}
	return affected(res)
}

type rowScanner interface{ Scan(dest ...any) error }

func scanGuideDetail(row rowScanner) (domain.GuideDetail, error) {
	var gd domain.GuideDetail
	var (
		language                    sql.NullString
		languageID                  sql.NullInt64
		nationality                 sql.NullString
		nationalityID               sql.NullInt64
		birth                       sql.NullString
		intimate, intimacy, iPhone  sql.NullString
	)
	err := row.Scan(
		&gd.ID, &gd.Name, &gd.Username,
		&language, &languageID,
		&gd.Email, &gd.Phone, &gd.PassportNo,
		&nationality, &nationalityID,
		&birth, &intimate, &intimacy, &iPhone,
		&gd.IsAdmin,
	)
	if err != nil {
		return domain.GuideDetail{}, err
	}
	gd.Language = nullStr(language)
	gd.LanguageID = nullI64(languageID)
	gd.Nationality = nullStr(nationality)
	gd.NationalityID = nullI64(nationalityID)
	gd.Birth = nullStr(birth)
	gd.Intimate = nullStr(intimate)
	gd.Intimacy = nullStr(intimacy)
	gd.IntimatePhone = nullStr(iPhone)
	return gd, nil
}
