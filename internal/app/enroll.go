package app

import (
	"context"
	"fmt"

	"tour_ops/internal/domain"
)

// EnrollService attaches tourists to teams. The write spans three tables
// (tourists, tourist_teams, tourists_payments) and runs as one unit of work:
// either all rows land or none do.
type EnrollService struct {
	tourists domain.TouristStore
}

func NewEnrollService(t domain.TouristStore) *EnrollService {
	return &EnrollService{tourists: t}
}

// Enroll links a tourist to a team and records the payment. A tourist whose
// passport number is already on file is reused instead of duplicated; the
// link and payment rows are written either way.
func (s *EnrollService) Enroll(ctx context.Context, e domain.Enrollment) error {
	tx, err := s.tourists.BeginEnrollment(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id, found, err := tx.FindTouristByPassport(ctx, e.Tourist.PassportNo)
	if err != nil {
		return err
	}
	if !found {
		id, err = tx.InsertTourist(ctx, e.Tourist)
		if err != nil {
			return err
		}
	}

	if err := tx.LinkTouristTeam(ctx, id, e.TeamID); err != nil {
		return fmt.Errorf("link tourist %d to team %d: %w", id, e.TeamID, err)
	}
	if err := tx.InsertPayment(ctx, e.TeamID, id, e.Amount, e.CurrencyID, e.PaymentMethodID, e.IsPayed); err != nil {
		return fmt.Errorf("payment for tourist %d: %w", id, err)
	}
	return tx.Commit()
}
