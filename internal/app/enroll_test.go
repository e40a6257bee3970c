package app_test

import (
	"context"
	"errors"
	"testing"

	"tour_ops/internal/app"
	"tour_ops/internal/domain"
)

type fakeEnrollTx struct {
	existing map[string]int64
	linkErr  error

	inserted   []domain.Tourist
	links      [][2]int64
	payments   int
	committed  bool
	rolledBack bool
}

func (f *fakeEnrollTx) FindTouristByPassport(ctx context.Context, passportNo string) (int64, bool, error) {
	id, ok := f.existing[passportNo]
	return id, ok, nil
}
func (f *fakeEnrollTx) InsertTourist(ctx context.Context, t domain.Tourist) (int64, error) {
	f.inserted = append(f.inserted, t)
	return 100, nil
}
func (f *fakeEnrollTx) LinkTouristTeam(ctx context.Context, touristID, teamID int64) error {
	if f.linkErr != nil {
		return f.linkErr
	}
	f.links = append(f.links, [2]int64{touristID, teamID})
	return nil
}
func (f *fakeEnrollTx) InsertPayment(ctx context.Context, teamID, touristID, amount, currencyID, paymentMethodID int64, isPayed bool) error {
	f.payments++
	return nil
}
func (f *fakeEnrollTx) Commit() error {
	f.committed = true
	return nil
}
func (f *fakeEnrollTx) Rollback() error {
	if !f.committed {
		f.rolledBack = true
	}
	return nil
}

type fakeEnrollStore struct {
	fakeTourists
	tx *fakeEnrollTx
}

func (f *fakeEnrollStore) BeginEnrollment(ctx context.Context) (domain.EnrollmentTx, error) {
	return f.tx, nil
}

func enrollment(passport string) domain.Enrollment {
	return domain.Enrollment{
		Tourist: domain.Tourist{
			Name: "Hans Meyer", GenderID: 1, NationalityID: 2,
			PassportNo: passport, Email: "hans@example.com", Phone: "+49 151 000",
		},
		TeamID: 9, Amount: 900, CurrencyID: 1, PaymentMethodID: 1, IsPayed: true,
	}
}

func TestEnroll_NewPassportInsertsTourist(t *testing.T) {
	tx := &fakeEnrollTx{}
	svc := app.NewEnrollService(&fakeEnrollStore{tx: tx})

	if err := svc.Enroll(context.Background(), enrollment("P7654321")); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if len(tx.inserted) != 1 {
		t.Fatalf("inserted %d tourists", len(tx.inserted))
	}
	if len(tx.links) != 1 || tx.links[0] != [2]int64{100, 9} {
		t.Fatalf("links: %v", tx.links)
	}
	if tx.payments != 1 || !tx.committed || tx.rolledBack {
		t.Fatalf("tx state: %+v", tx)
	}
}

func TestEnroll_KnownPassportReusesTourist(t *testing.T) {
	tx := &fakeEnrollTx{existing: map[string]int64{"P7654321": 55}}
	svc := app.NewEnrollService(&fakeEnrollStore{tx: tx})

	if err := svc.Enroll(context.Background(), enrollment("P7654321")); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if len(tx.inserted) != 0 {
		t.Fatalf("must not duplicate the tourist: %v", tx.inserted)
	}
	if len(tx.links) != 1 || tx.links[0] != [2]int64{55, 9} {
		t.Fatalf("links: %v", tx.links)
	}
	if tx.payments != 1 || !tx.committed {
		t.Fatalf("tx state: %+v", tx)
	}
}

func TestEnroll_FailureRollsBack(t *testing.T) {
	boom := errors.New("duplicate link")
	tx := &fakeEnrollTx{linkErr: boom}
	svc := app.NewEnrollService(&fakeEnrollStore{tx: tx})

	err := svc.Enroll(context.Background(), enrollment("P7654321"))
	if !errors.Is(err, boom) {
		t.Fatalf("want wrapped link error, got %v", err)
	}
	if tx.committed || !tx.rolledBack {
		t.Fatalf("tx state: %+v", tx)
	}
	if tx.payments != 0 {
		t.Fatalf("payment written after failed link")
	}
}
