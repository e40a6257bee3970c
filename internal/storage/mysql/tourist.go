package mysql

import (
	"context"
	"database/sql"

	"tour_ops/internal/domain"
)

type TouristStore struct{ db *sql.DB }

func (s *TouristStore) Get(ctx context.Context, id int64) (domain.TouristView, error) {
	row := s.db.QueryRowContext(ctx, getTouristSQL, id)

	var tv domain.TouristView
	var (
		birth                         sql.NullString
		gender                        sql.NullString
		genderID                      sql.NullInt64
		nationality                   sql.NullString
		nationalityID                 sql.NullInt64
		address, intimate, intimacy   sql.NullString
		intimatePhone                 sql.NullString
	)
	err := row.Scan(
		&tv.Name, &birth, &gender, &genderID, &nationality, &nationalityID,
		&tv.PassportNo, &tv.Email, &tv.Phone,
		&address, &intimate, &intimacy, &intimatePhone,
	)
	if err == sql.ErrNoRows {
		return domain.TouristView{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.TouristView{}, err
	}
	tv.Birth = nullStr(birth)
	tv.Gender = nullStr(gender)
	tv.GenderID = nullI64(genderID)
	tv.Nationality = nullStr(nationality)
	tv.NationalityID = nullI64(nationalityID)
	tv.Address = nullStr(address)
	tv.Intimate = nullStr(intimate)
	tv.Intimacy = nullStr(intimacy)
	tv.IntimatePhone = nullStr(intimatePhone)
	return tv, nil
}

func (s *TouristStore) ListByTeam(ctx context.Context, teamID int64) ([]domain.TeamTourist, error) {
	rows, err := s.db.QueryContext(ctx, listTeamTouristsSQL, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.TeamTourist{}
	for rows.Next() {
		var tt domain.TeamTourist
		var (
			birth                       sql.NullString
			genderID                    sql.NullInt64
			gender                      sql.NullString
			nationalityID               sql.NullInt64
			nationality                 sql.NullString
			address, intimate, intimacy sql.NullString
			intimatePhone               sql.NullString
			amount                      sql.NullInt64
			isPayed                     sql.NullBool
			currency                    sql.NullString
			currencyID                  sql.NullInt64
			method                      sql.NullString
			methodID                    sql.NullInt64
		)
		err := rows.Scan(
			&tt.ID, &tt.Name, &birth,
			&genderID, &gender, &nationalityID, &nationality,
			&tt.PassportNo, &tt.Email, &tt.Phone,
			&address, &intimate, &intimacy, &intimatePhone,
			&amount, &isPayed, &currency, &currencyID, &method, &methodID,
		)
		if err != nil {
			return nil, err
		}
		tt.Birth = nullStr(birth)
		tt.GenderID = nullI64(genderID)
		tt.Gender = nullStr(gender)
		tt.NationalityID = nullI64(nationalityID)
		tt.Nationality = nullStr(nationality)
		tt.Address = nullStr(address)
		tt.Intimate = nullStr(intimate)
		tt.Intimacy = nullStr(intimacy)
		tt.IntimatePhone = nullStr(intimatePhone)
		tt.Amount = nullI64(amount)
		tt.IsPayed = nullBool(isPayed)
		tt.Currency = nullStr(currency)
		tt.CurrencyID = nullI64(currencyID)
		tt.PaymentMethod = nullStr(method)
		tt.PaymentMethodID = nullI64(methodID)
		out = append(out, tt)
	}
	return out, rows.Err()
}

// Update writes the profile and that tourist's payment record in one
// transaction. The affected count reported is the profile row's.
func (s *TouristStore) Update(ctx context.Context, id int64, t domain.Tourist, p domain.PaymentUpdate) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, updateTouristSQL, touristArgs(t, id)...)
	if err != nil {
		return 0, err
	}
	n, err := affected(res)
	if err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, updatePaymentSQL,
		argI64(p.Amount), p.IsPayed, argI64(p.CurrencyID), id); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *TouristStore) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, deleteTouristSQL, id)
	if err != nil {
		return 0, err
	}
	return affected(res)
}

func (s *TouristStore) BeginEnrollment(ctx context.Context) (domain.EnrollmentTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &enrollmentTx{tx: tx}, nil
}

// enrollmentTx runs the find-or-insert, link and payment statements on one
// underlying transaction.
type enrollmentTx struct{ tx *sql.Tx }

func (e *enrollmentTx) FindTouristByPassport(ctx context.Context, passportNo string) (int64, bool, error) {
	var id int64
	err := e.tx.QueryRowContext(ctx, findTouristByPassportSQL, passportNo).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (e *enrollmentTx) InsertTourist(ctx context.Context, t domain.Tourist) (int64, error) {
	res, err := e.tx.ExecContext(ctx, insertTouristSQL,
		t.Name, argStr(t.Birth), t.GenderID, t.NationalityID,
		t.PassportNo, t.Email, t.Phone,
		argStr(t.Address), argStr(t.Intimate), argStr(t.Intimacy), argStr(t.IntimatePhone))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (e *enrollmentTx) LinkTouristTeam(ctx context.Context, touristID, teamID int64) error {
	_, err := e.tx.ExecContext(ctx, linkTouristTeamSQL, touristID, teamID)
	return err
}

func (e *enrollmentTx) InsertPayment(ctx context.Context, teamID, touristID, amount, currencyID, paymentMethodID int64, isPayed bool) error {
	_, err := e.tx.ExecContext(ctx, insertPaymentSQL,
		teamID, touristID, amount, currencyID, paymentMethodID, isPayed)
	return err
}

func (e *enrollmentTx) Commit() error   { return e.tx.Commit() }
func (e *enrollmentTx) Rollback() error { return e.tx.Rollback() }

func touristArgs(t domain.Tourist, id int64) []any {
	return []any{
		t.Name, argStr(t.Birth), t.GenderID, t.NationalityID,
		t.PassportNo, t.Email, t.Phone,
		argStr(t.Address), argStr(t.Intimate), argStr(t.Intimacy), argStr(t.IntimatePhone),
		id,
	}
}
