package app_test

import (
	"context"
	"errors"
	"testing"

	"tour_ops/internal/app"
	"tour_ops/internal/domain"
)

// ---- fakes ----

type fakeTeams struct {
	detail domain.TeamDetail
	ref    domain.TeamRef
	items  []domain.TeamListItem
	total  int64

	todayGuideID *int64
	gotMain      domain.MainQuery
}

func (f *fakeTeams) GetDetail(ctx context.Context, slug string) (domain.TeamDetail, error) {
	if slug != f.detail.Team {
		return domain.TeamDetail{}, domain.ErrNotFound
	}
	return f.detail, nil
}
func (f *fakeTeams) RefBySlug(ctx context.Context, slug string) (domain.TeamRef, error) {
	return f.ref, nil
}
func (f *fakeTeams) ListToday(ctx context.Context, today string, guideID *int64) ([]domain.TeamListItem, error) {
	f.todayGuideID = guideID
	return f.items, nil
}
func (f *fakeTeams) ListMain(ctx context.Context, q domain.MainQuery) ([]domain.TeamListItem, int64, error) {
	f.gotMain = q
	return f.items, f.total, nil
}
func (f *fakeTeams) Filter(ctx context.Context, fl domain.TeamFilter) ([]domain.TeamListItem, int64, error) {
	return f.items, f.total, nil
}
func (f *fakeTeams) Insert(ctx context.Context, t domain.Team) (domain.CreatedTeam, error) {
	return domain.CreatedTeam{ID: 1, Team: t}, nil
}
func (f *fakeTeams) Update(ctx context.Context, slug string, t domain.Team) (int64, error) {
	return 1, nil
}
func (f *fakeTeams) Delete(ctx context.Context, slug string) (int64, error) { return 1, nil }

type fakeActivities struct{ acts []domain.ActivityView }

func (f *fakeActivities) ListByTeam(ctx context.Context, teamID int64) ([]domain.ActivityView, error) {
	return f.acts, nil
}
func (f *fakeActivities) Insert(ctx context.Context, a domain.Activity) (int64, error) { return 1, nil }
func (f *fakeActivities) Update(ctx context.Context, id int64, a domain.Activity) (int64, error) {
	return 1, nil
}
func (f *fakeActivities) DeleteScoped(ctx context.Context, id, teamID int64) (int64, error) {
	return 1, nil
}

type fakeTourists struct{ roster []domain.TeamTourist }

func (f *fakeTourists) Get(ctx context.Context, id int64) (domain.TouristView, error) {
	return domain.TouristView{}, nil
}
func (f *fakeTourists) ListByTeam(ctx context.Context, teamID int64) ([]domain.TeamTourist, error) {
	return f.roster, nil
}
func (f *fakeTourists) Update(ctx context.Context, id int64, t domain.Tourist, p domain.PaymentUpdate) (int64, error) {
	return 1, nil
}
func (f *fakeTourists) Delete(ctx context.Context, id int64) (int64, error) { return 1, nil }
func (f *fakeTourists) BeginEnrollment(ctx context.Context) (domain.EnrollmentTx, error) {
	return nil, errors.New("not in this test")
}

type fakeGuides struct {
	login  domain.LoginInfo
	roster []domain.GuideRef
	list   []domain.GuideDetail
}

func (f *fakeGuides) GetByUsername(ctx context.Context, username string, onlyID *int64) (domain.GuideDetail, error) {
	return domain.GuideDetail{}, domain.ErrNotFound
}
func (f *fakeGuides) GetForLogin(ctx context.Context, username string) (domain.LoginInfo, error) {
	if username != f.login.Username {
		return domain.LoginInfo{}, domain.ErrNotFound
	}
	return f.login, nil
}
func (f *fakeGuides) ListDetailed(ctx context.Context) ([]domain.GuideDetail, error) {
	return f.list, nil
}
func (f *fakeGuides) Roster(ctx context.Context) ([]domain.GuideRef, error) { return f.roster, nil }
func (f *fakeGuides) Insert(ctx context.Context, g domain.GuideInput, hash string) error { return nil }
func (f *fakeGuides) Update(ctx context.Context, id int64, g domain.GuideInput, hash string) (int64, error) {
	return 1, nil
}
func (f *fakeGuides) Delete(ctx context.Context, id int64) (int64, error) { return 1, nil }

type fakeTours struct{ tours []domain.TourView }

func (f *fakeTours) List(ctx context.Context) ([]domain.TourView, error) { return f.tours, nil }
func (f *fakeTours) ListWithCity(ctx context.Context) ([]domain.TourWithCity, error) {
	return nil, nil
}
func (f *fakeTours) Insert(ctx context.Context, t domain.Tour) error                   { return nil }
func (f *fakeTours) Update(ctx context.Context, id int64, t domain.Tour) (int64, error) { return 1, nil }
func (f *fakeTours) Delete(ctx context.Context, id int64) (int64, error)               { return 1, nil }

type fakeRestaurants struct{}

func (fakeRestaurants) List(ctx context.Context) ([]domain.RestaurantView, error) {
	return []domain.RestaurantView{{ID: 1}}, nil
}
func (fakeRestaurants) Insert(ctx context.Context, r domain.Restaurant) (int64, error) { return 1, nil }
func (fakeRestaurants) Update(ctx context.Context, id int64, r domain.Restaurant) (int64, error) {
	return 1, nil
}
func (fakeRestaurants) Delete(ctx context.Context, id int64) (int64, error) { return 1, nil }

type fakeHousings struct{}

func (fakeHousings) List(ctx context.Context) ([]domain.HousingView, error) {
	return []domain.HousingView{{ID: 1}}, nil
}
func (fakeHousings) Insert(ctx context.Context, h domain.Housing) (int64, error) { return 1, nil }
func (fakeHousings) Update(ctx context.Context, id int64, h domain.Housing) (int64, error) {
	return 1, nil
}
func (fakeHousings) Delete(ctx context.Context, id int64) (int64, error) { return 1, nil }

type fakeVehicles struct{}

func (fakeVehicles) List(ctx context.Context) ([]domain.VehicleView, error) { return nil, nil }
func (fakeVehicles) Refs(ctx context.Context) ([]domain.VehicleRef, error) {
	return []domain.VehicleRef{{ID: 1}}, nil
}
func (fakeVehicles) Insert(ctx context.Context, v domain.Vehicle) (int64, error) { return 1, nil }
func (fakeVehicles) Update(ctx context.Context, id int64, v domain.Vehicle) (int64, error) {
	return 1, nil
}
func (fakeVehicles) Delete(ctx context.Context, id int64) (int64, error) { return 1, nil }

type fakeLookup struct{ rows []domain.LookupRow }

func (f *fakeLookup) List(ctx context.Context) ([]domain.LookupRow, error) { return f.rows, nil }
func (f *fakeLookup) Insert(ctx context.Context, value string) (int64, error) { return 1, nil }
func (f *fakeLookup) Update(ctx context.Context, id int64, value string) (int64, error) {
	return 1, nil
}
func (f *fakeLookup) Delete(ctx context.Context, id int64) (int64, error) { return 1, nil }

func testStores(teams *fakeTeams, guides *fakeGuides) domain.Stores {
	lk := &fakeLookup{rows: []domain.LookupRow{{ID: 1, Value: "x"}}}
	return domain.Stores{
		Teams:       teams,
		Activities:  &fakeActivities{acts: []domain.ActivityView{{ID: 7, Activity: "Palace visit"}}},
		Tourists:    &fakeTourists{roster: []domain.TeamTourist{{ID: 3, Name: "Hans Meyer"}}},
		Guides:      guides,
		Tours:       &fakeTours{tours: []domain.TourView{{ID: 5}}},
		Restaurants: fakeRestaurants{},
		Housings:    fakeHousings{},
		Vehicles:    fakeVehicles{},

		Cities:         lk,
		Nationalities:  lk,
		Currencies:     lk,
		Airports:       lk,
		Languages:      lk,
		Genders:        lk,
		PaymentMethods: lk,
	}
}

// ---- tests ----

func TestDetail_ShapesByViewer(t *testing.T) {
	teams := &fakeTeams{detail: domain.TeamDetail{ID: 9, Team: "BC-2026-09", GuideID: 2}}
	guides := &fakeGuides{list: []domain.GuideDetail{{ID: 2, Name: "Ayse Demir"}}}
	svc := app.NewTeamService(testStores(teams, guides))
	ctx := context.Background()

	// Anonymous: bare team plus itinerary, no catalogs.
	r, err := svc.Detail(ctx, "BC-2026-09", nil)
	if err != nil {
		t.Fatalf("anonymous: %v", err)
	}
	if r.Team.ID != 9 || len(r.Activities) != 1 {
		t.Fatalf("anonymous reply: %+v", r)
	}
	if r.Tours != nil || r.Guides != nil || r.Airports != nil {
		t.Fatalf("anonymous must not carry catalogs: %+v", r)
	}

	// Owning guide: same bare shape.
	r, err = svc.Detail(ctx, "BC-2026-09", &app.Viewer{GuideID: 2})
	if err != nil {
		t.Fatalf("owner: %v", err)
	}
	if r.Tours != nil {
		t.Fatalf("owner must not carry catalogs: %+v", r)
	}

	// Another guide: indistinguishable from a missing slug.
	if _, err := svc.Detail(ctx, "BC-2026-09", &app.Viewer{GuideID: 3}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign guide: want ErrNotFound, got %v", err)
	}

	// Admin: edit catalogs ride along.
	r, err = svc.Detail(ctx, "BC-2026-09", &app.Viewer{GuideID: 1, IsAdmin: true})
	if err != nil {
		t.Fatalf("admin: %v", err)
	}
	if len(r.Tours) != 1 || len(r.Guides) != 1 || len(r.Airports) != 1 ||
		len(r.Restaurants) != 1 || len(r.Vehicles) != 1 || len(r.Housings) != 1 {
		t.Fatalf("admin catalogs: %+v", r)
	}
}

func TestToday_GuideScopingAndAttribution(t *testing.T) {
	teams := &fakeTeams{items: []domain.TeamListItem{{ID: 1, Team: "BC-2026-09"}}}
	svc := app.NewTeamService(testStores(teams, &fakeGuides{}))
	ctx := context.Background()

	items, err := svc.Today(ctx, "2026-09-03", app.Viewer{GuideID: 4})
	if err != nil {
		t.Fatalf("guide: %v", err)
	}
	if teams.todayGuideID == nil || *teams.todayGuideID != 4 {
		t.Fatalf("store not guide-scoped: %v", teams.todayGuideID)
	}
	if items[0].GuideID == nil || *items[0].GuideID != 4 {
		t.Fatalf("guide rows must be self-attributed: %+v", items[0])
	}

	if _, err := svc.Today(ctx, "2026-09-03", app.Viewer{GuideID: 4, IsAdmin: true}); err != nil {
		t.Fatalf("admin: %v", err)
	}
	if teams.todayGuideID != nil {
		t.Fatalf("admin listing must be unscoped, got %v", *teams.todayGuideID)
	}
}

func TestMain_AdminGetsRoster(t *testing.T) {
	teams := &fakeTeams{items: []domain.TeamListItem{{ID: 1}}, total: 12}
	guides := &fakeGuides{roster: []domain.GuideRef{{ID: 2, Guide: "Ayse Demir"}}}
	svc := app.NewTeamService(testStores(teams, guides))
	ctx := context.Background()

	r, err := svc.Main(ctx, app.Viewer{GuideID: 2}, 1, 5)
	if err != nil {
		t.Fatalf("guide: %v", err)
	}
	if teams.gotMain.GuideID == nil || *teams.gotMain.GuideID != 2 {
		t.Fatalf("guide query not scoped: %+v", teams.gotMain)
	}
	if r.Guides != nil {
		t.Fatalf("guide must not get the roster: %+v", r)
	}
	if r.TotalCount != 12 {
		t.Fatalf("total: %d", r.TotalCount)
	}

	r, err = svc.Main(ctx, app.Viewer{IsAdmin: true}, 2, 10)
	if err != nil {
		t.Fatalf("admin: %v", err)
	}
	if teams.gotMain.GuideID != nil || teams.gotMain.Page != 2 || teams.gotMain.PageSize != 10 {
		t.Fatalf("admin query: %+v", teams.gotMain)
	}
	if len(r.Guides) != 1 {
		t.Fatalf("admin roster: %+v", r.Guides)
	}
}

func TestTourists_AdminGetsEditCatalogs(t *testing.T) {
	teams := &fakeTeams{ref: domain.TeamRef{ID: 9, Team: "BC-2026-09"}}
	svc := app.NewTeamService(testStores(teams, &fakeGuides{}))
	ctx := context.Background()

	r, err := svc.Tourists(ctx, "BC-2026-09", app.Viewer{GuideID: 2})
	if err != nil {
		t.Fatalf("guide: %v", err)
	}
	if len(r.Tourists) != 1 || r.Genders != nil {
		t.Fatalf("guide roster reply: %+v", r)
	}

	r, err = svc.Tourists(ctx, "BC-2026-09", app.Viewer{IsAdmin: true})
	if err != nil {
		t.Fatalf("admin: %v", err)
	}
	if len(r.Genders) != 1 || len(r.Nationalities) != 1 || len(r.Currencies) != 1 || len(r.PaymentMethods) != 1 {
		t.Fatalf("admin roster catalogs: %+v", r)
	}
}
