package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"tour_ops/internal/domain"
)

// Viewer is the authenticated principal a query is shaped for. A nil *Viewer
// means anonymous.
type Viewer struct {
	GuideID int64
	IsAdmin bool
}

type TeamService struct {
	stores domain.Stores
}

func NewTeamService(st domain.Stores) *TeamService {
	return &TeamService{stores: st}
}

// TeamDetailReply is the single-team page. The catalog slices are populated
// for admin viewers only and omitted from the body otherwise.
type TeamDetailReply struct {
	Team        domain.TeamDetail       `json:"team"`
	Activities  []domain.ActivityView   `json:"activities"`
	Tours       []domain.TourView       `json:"tours,omitempty"`
	Guides      []domain.GuideDetail    `json:"guides,omitempty"`
	Airports    []domain.LookupRow      `json:"airports,omitempty"`
	Restaurants []domain.RestaurantView `json:"restaurants,omitempty"`
	Vehicles    []domain.VehicleRef     `json:"vehicles,omitempty"`
	Housings    []domain.HousingView    `json:"housings,omitempty"`
}

// Detail loads a team page shaped for the viewer. Admins get the edit
// catalogs alongside; a guide sees only their own team; anyone else gets the
// bare team. A guide asking for another guide's team gets ErrNotFound, the
// same as a missing slug, so team names are not probeable.
func (s *TeamService) Detail(ctx context.Context, slug string, v *Viewer) (TeamDetailReply, error) {
	td, err := s.stores.Teams.GetDetail(ctx, slug)
	if err != nil {
		return TeamDetailReply{}, err
	}
	acts, err := s.stores.Activities.ListByTeam(ctx, td.ID)
	if err != nil {
		return TeamDetailReply{}, err
	}
	reply := TeamDetailReply{Team: td, Activities: acts}

	if v == nil {
		return reply, nil
	}
	if !v.IsAdmin {
		if v.GuideID != td.GuideID {
			return TeamDetailReply{}, domain.ErrNotFound
		}
		return reply, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { var err error; reply.Tours, err = s.stores.Tours.List(ctx); return err })
	g.Go(func() error { var err error; reply.Guides, err = s.stores.Guides.ListDetailed(ctx); return err })
	g.Go(func() error { var err error; reply.Airports, err = s.stores.Airports.List(ctx); return err })
	g.Go(func() error { var err error; reply.Restaurants, err = s.stores.Restaurants.List(ctx); return err })
	g.Go(func() error { var err error; reply.Vehicles, err = s.stores.Vehicles.Refs(ctx); return err })
	g.Go(func() error { var err error; reply.Housings, err = s.stores.Housings.List(ctx); return err })
	if err := g.Wait(); err != nil {
		return TeamDetailReply{}, err
	}
	return reply, nil
}

// ActivitiesReply is the public itinerary of one team.
type ActivitiesReply struct {
	Team       domain.TeamRef        `json:"team"`
	Activities []domain.ActivityView `json:"activities"`
}

func (s *TeamService) Activities(ctx context.Context, slug string) (ActivitiesReply, error) {
	ref, err := s.stores.Teams.RefBySlug(ctx, slug)
	if err != nil {
		return ActivitiesReply{}, err
	}
	acts, err := s.stores.Activities.ListByTeam(ctx, ref.ID)
	if err != nil {
		return ActivitiesReply{}, err
	}
	return ActivitiesReply{Team: ref, Activities: acts}, nil
}

// RosterReply is the tourist roster of one team. Admin viewers additionally
// get the lookup catalogs needed to edit roster entries.
type RosterReply struct {
	Team           domain.TeamRef       `json:"team"`
	Tourists       []domain.TeamTourist `json:"tourists"`
	Nationalities  []domain.LookupRow   `json:"nationalities,omitempty"`
	Genders        []domain.LookupRow   `json:"genders,omitempty"`
	Currencies     []domain.LookupRow   `json:"currencies,omitempty"`
	PaymentMethods []domain.LookupRow   `json:"paymentMethods,omitempty"`
}

func (s *TeamService) Tourists(ctx context.Context, slug string, v Viewer) (RosterReply, error) {
	ref, err := s.stores.Teams.RefBySlug(ctx, slug)
	if err != nil {
		return RosterReply{}, err
	}
	reply := RosterReply{Team: ref}
	reply.Tourists, err = s.stores.Tourists.ListByTeam(ctx, ref.ID)
	if err != nil {
		return RosterReply{}, err
	}
	if !v.IsAdmin {
		return reply, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { var err error; reply.Nationalities, err = s.stores.Nationalities.List(ctx); return err })
	g.Go(func() error { var err error; reply.Genders, err = s.stores.Genders.List(ctx); return err })
	g.Go(func() error { var err error; reply.Currencies, err = s.stores.Currencies.List(ctx); return err })
	g.Go(func() error { var err error; reply.PaymentMethods, err = s.stores.PaymentMethods.List(ctx); return err })
	if err := g.Wait(); err != nil {
		return RosterReply{}, err
	}
	return reply, nil
}

// Today lists teams running on the given date. Admins see every running team
// with guide attribution; a guide sees only their own, attributed by id only.
func (s *TeamService) Today(ctx context.Context, today string, v Viewer) ([]domain.TeamListItem, error) {
	if v.IsAdmin {
		return s.stores.Teams.ListToday(ctx, today, nil)
	}
	items, err := s.stores.Teams.ListToday(ctx, today, &v.GuideID)
	if err != nil {
		return nil, err
	}
	id := v.GuideID
	for i := range items {
		items[i].GuideID = &id
	}
	return items, nil
}

// MainReply is one page of the landing listing. Admin viewers also get the
// guide roster for the assignment picker.
type MainReply struct {
	Teams      []domain.TeamListItem `json:"teams"`
	TotalCount int64                 `json:"totalCount"`
	Guides     []domain.GuideRef     `json:"guides,omitempty"`
}

func (s *TeamService) Main(ctx context.Context, v Viewer, page, pageSize int) (MainReply, error) {
	q := domain.MainQuery{Page: page, PageSize: pageSize}
	if !v.IsAdmin {
		id := v.GuideID
		q.GuideID = &id
	}

	var reply MainReply
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reply.Teams, reply.TotalCount, err = s.stores.Teams.ListMain(ctx, q)
		return err
	})
	if v.IsAdmin {
		g.Go(func() error { var err error; reply.Guides, err = s.stores.Guides.Roster(ctx); return err })
	}
	if err := g.Wait(); err != nil {
		return MainReply{}, err
	}
	return reply, nil
}

// FilterReply is one page of a filtered listing, without guide attribution.
type FilterReply struct {
	TotalCount int64                 `json:"totalCount"`
	Teams      []domain.TeamListItem `json:"teams"`
}

func (s *TeamService) Filter(ctx context.Context, f domain.TeamFilter) (FilterReply, error) {
	teams, total, err := s.stores.Teams.Filter(ctx, f)
	if err != nil {
		return FilterReply{}, err
	}
	return FilterReply{TotalCount: total, Teams: teams}, nil
}
