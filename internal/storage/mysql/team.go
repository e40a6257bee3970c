package mysql

import (
	"context"
	"database/sql"
	"strings"

	"tour_ops/internal/domain"
)

type TeamStore struct{ db *sql.DB }

func (s *TeamStore) GetDetail(ctx context.Context, slug string) (domain.TeamDetail, error) {
	row := s.db.QueryRowContext(ctx, getTeamDetailSQL, slug)

	var td domain.TeamDetail
	var (
		outNo, outDep, outDepAp, outLand, outLandAp sql.NullString
		retNo, retDep, retDepAp, retLand, retLandAp sql.NullString
		outDepApID, outLandApID                     sql.NullInt64
		retDepApID, retLandApID                     sql.NullInt64
	)
	err := row.Scan(
		&td.ID,
		&td.Team,
		&td.Tour,
		&td.TourID,
		&td.NumberOfDays,
		&td.NumberOfNights,
		&td.StartsAt,
		&td.EndsAt,
		&td.Guide,
		&td.GuideID,
		&td.GuideSlug,
		&outNo,
		&outDep,
		&outDepAp,
		&outDepApID,
		&outLand,
		&outLandAp,
		&outLandApID,
		&retNo,
		&retDep,
		&retDepAp,
		&retDepApID,
		&retLand,
		&retLandAp,
		&retLandApID,
	)
	if err == sql.ErrNoRows {
		return domain.TeamDetail{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.TeamDetail{}, err
	}

	td.FlightOutwardNo = nullStr(outNo)
	td.FlightOutwardDeparture = nullStr(outDep)
	td.FlightOutwardDepartureAirport = nullStr(outDepAp)
	td.FlightOutwardDepartureAirportID = nullI64(outDepApID)
	td.FlightOutwardLanding = nullStr(outLand)
	td.FlightOutwardLandingAirport = nullStr(outLandAp)
	td.FlightOutwardLandingAirportID = nullI64(outLandApID)
	td.FlightReturnNo = nullStr(retNo)
	td.FlightReturnDeparture = nullStr(retDep)
	td.FlightReturnDepartureAirport = nullStr(retDepAp)
	td.FlightReturnDepartureAirportID = nullI64(retDepApID)
	td.FlightReturnLanding = nullStr(retLand)
	td.FlightReturnLandingAirport = nullStr(retLandAp)
	td.FlightReturnLandingAirportID = nullI64(retLandApID)
	return td, nil
}

func (s *TeamStore) RefBySlug(ctx context.Context, slug string) (domain.TeamRef, error) {
	var ref domain.TeamRef
	err := s.db.QueryRowContext(ctx, teamRefSQL, slug).Scan(&ref.ID, &ref.Team)
	if err == sql.ErrNoRows {
		return domain.TeamRef{}, domain.ErrNotFound
	}
	return ref, err
}

func (s *TeamStore) ListToday(ctx context.Context, today string, guideID *int64) ([]domain.TeamListItem, error) {
	withGuide := guideID == nil

	var b strings.Builder
	b.WriteString(listTeamsBaseSQL)
	if withGuide {
		b.WriteString(listTeamsGuideColsSQL)
	}
	b.WriteString(listTeamsFromSQL)
	b.WriteString("WHERE ? BETWEEN DATE(t.starts_at) AND DATE(t.ends_at)")
	args := []any{today}
	if !withGuide {
		b.WriteString(" AND t.guide_id = ?")
		args = append(args, *guideID)
	}

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTeamItems(rows, withGuide)
}

func (s *TeamStore) ListMain(ctx context.Context, q domain.MainQuery) ([]domain.TeamListItem, int64, error) {
	countSQL := "SELECT COUNT(*) FROM teams"
	countArgs := []any{}
	if q.GuideID != nil {
		countSQL += " WHERE guide_id = ?"
		countArgs = append(countArgs, *q.GuideID)
	}
	var total int64
	if err := s.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	var b strings.Builder
	b.WriteString(listTeamsBaseSQL)
	b.WriteString(listTeamsGuideColsSQL)
	b.WriteString(listTeamsFromSQL)
	args := []any{}
	if q.GuideID != nil {
		b.WriteString("WHERE t.guide_id = ?\n")
		args = append(args, *q.GuideID)
	}
	b.WriteString("ORDER BY t.starts_at DESC LIMIT ? OFFSET ?")
	args = append(args, q.PageSize, (q.Page-1)*q.PageSize)

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := scanTeamItems(rows, true)
	return items, total, err
}

// Filter combines the optional predicates with AND semantics and pages the
// result. The same WHERE clause feeds the count and the row query.
func (s *TeamStore) Filter(ctx context.Context, f domain.TeamFilter) ([]domain.TeamListItem, int64, error) {
	conds := []string{}
	args := []any{}
	if f.GuideID != nil {
		conds = append(conds, "t.guide_id = ?")
		args = append(args, *f.GuideID)
	}
	if f.StartDate != nil {
		conds = append(conds, "t.starts_at >= ?")
		args = append(args, *f.StartDate)
	}
	if f.EndDate != nil {
		conds = append(conds, "t.ends_at <= ?")
		args = append(args, *f.EndDate)
	}
	if f.Today != nil {
		conds = append(conds, "DATE(t.starts_at) = ?")
		args = append(args, *f.Today)
	}
	if f.Upcoming != nil {
		conds = append(conds, "t.starts_at > ?")
		args = append(args, *f.Upcoming)
	}
	if f.Past != nil {
		conds = append(conds, "t.starts_at < ?")
		args = append(args, *f.Past)
	}
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ") + "\n"
	}

	countSQL := "SELECT COUNT(*) FROM teams t LEFT JOIN tours tr ON tr.id = t.tour_id\n" + where
	var total int64
	if err := s.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	var b strings.Builder
	b.WriteString(listTeamsBaseSQL)
	b.WriteString(listTeamsFromSQL)
	b.WriteString(where)
	b.WriteString("ORDER BY t.starts_at DESC LIMIT ? OFFSET ?")
	pageArgs := append(append([]any{}, args...), f.PageSize, (f.Page-1)*f.PageSize)

	rows, err := s.db.QueryContext(ctx, b.String(), pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := scanTeamItems(rows, false)
	return items, total, err
}

func scanTeamItems(rows *sql.Rows, withGuide bool) ([]domain.TeamListItem, error) {
	out := []domain.TeamListItem{}
	for rows.Next() {
		var it domain.TeamListItem
		var (
			tourID                  sql.NullInt64
			tour                    sql.NullString
			tourDays, tourNights    sql.NullInt64
			guideID                 sql.NullInt64
			guideName, guideSlug    sql.NullString
		)
		dst := []any{&it.ID, &it.Team, &tourID, &tour, &tourDays, &tourNights, &it.StartsAt, &it.EndsAt}
		if withGuide {
			dst = append(dst, &guideID, &guideName, &guideSlug)
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		it.TourID = nullI64(tourID)
		it.Tour = nullStr(tour)
		it.TourDays = nullInt(tourDays)
		it.TourNights = nullInt(tourNights)
		if withGuide {
			it.GuideID = nullI64(guideID)
			it.Guide = nullStr(guideName)
			it.GuideSlug = nullStr(guideSlug)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (s *TeamStore) Insert(ctx context.Context, t domain.Team) (domain.CreatedTeam, error) {
	res, err := s.db.ExecContext(ctx, insertTeamSQL, teamArgs(t)...)
	if err != nil {
		return domain.CreatedTeam{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.CreatedTeam{}, err
	}
	return domain.CreatedTeam{ID: id, Team: t}, nil
}

func (s *TeamStore) Update(ctx context.Context, slug string, t domain.Team) (int64, error) {
	args := append(teamArgs(t), slug)
	res, err := s.db.ExecContext(ctx, updateTeamSQL, args...)
	if err != nil {
		return 0, err
	}
	return affected(res)
}

func (s *TeamStore) Delete(ctx context.Context, slug string) (int64, error) {
	res, err := s.db.ExecContext(ctx, deleteTeamSQL, slug)
	if err != nil {
		return 0, err
	}
	return affected(res)
}

func teamArgs(t domain.Team) []any {
	return []any{
		t.Team,
		t.TourID,
		t.StartsAt,
		t.EndsAt,
		t.GuideID,
		argStr(t.FlightOutwardNo),
		argStr(t.FlightOutwardDeparture),
		argI64(t.FlightOutwardDepartureAirport),
		argStr(t.FlightOutwardLanding),
		argI64(t.FlightOutwardLandingAirport),
		argStr(t.FlightReturnNo),
		argStr(t.FlightReturnDeparture),
		argI64(t.FlightReturnDepartureAirport),
		argStr(t.FlightReturnLanding),
		argI64(t.FlightReturnLandingAirport),
	}
}
