package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"tour_ops/internal/domain"
)

// CatalogService assembles the bootstrap bundles the admin forms load before
// a create. Each bundle fetches its lists concurrently and fails whole when
// any list fails.
type CatalogService struct {
	stores domain.Stores
}

func NewCatalogService(st domain.Stores) *CatalogService {
	return &CatalogService{stores: st}
}

type TeamCatalog struct {
	Tours    []domain.TourView    `json:"tours"`
	Guides   []domain.GuideDetail `json:"guides"`
	Airports []domain.LookupRow   `json:"airports"`
}

func (s *CatalogService) ForTeam(ctx context.Context) (TeamCatalog, error) {
	var c TeamCatalog
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { var err error; c.Tours, err = s.stores.Tours.List(ctx); return err })
	g.Go(func() error { var err error; c.Guides, err = s.stores.Guides.ListDetailed(ctx); return err })
	g.Go(func() error { var err error; c.Airports, err = s.stores.Airports.List(ctx); return err })
	return c, g.Wait()
}

// ActivityCatalog keys are singular where the consuming form expects them
// singular.
type ActivityCatalog struct {
	Housing    []domain.HousingView    `json:"housing"`
	Restaurant []domain.RestaurantView `json:"restaurant"`
	Vehicles   []domain.VehicleRef     `json:"vehicles"`
	Airports   []domain.LookupRow      `json:"airports"`
}

func (s *CatalogService) ForActivity(ctx context.Context) (ActivityCatalog, error) {
	var c ActivityCatalog
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { var err error; c.Housing, err = s.stores.Housings.List(ctx); return err })
	g.Go(func() error { var err error; c.Restaurant, err = s.stores.Restaurants.List(ctx); return err })
	g.Go(func() error { var err error; c.Vehicles, err = s.stores.Vehicles.Refs(ctx); return err })
	g.Go(func() error { var err error; c.Airports, err = s.stores.Airports.List(ctx); return err })
	return c, g.Wait()
}

type TouristCatalog struct {
	Genders        []domain.LookupRow `json:"genders"`
	Nationalities  []domain.LookupRow `json:"nationalities"`
	Currencies     []domain.LookupRow `json:"currencies"`
	PaymentMethods []domain.LookupRow `json:"paymentMethods"`
}

func (s *CatalogService) ForTourist(ctx context.Context) (TouristCatalog, error) {
	var c TouristCatalog
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { var err error; c.Genders, err = s.stores.Genders.List(ctx); return err })
	g.Go(func() error { var err error; c.Nationalities, err = s.stores.Nationalities.List(ctx); return err })
	g.Go(func() error { var err error; c.Currencies, err = s.stores.Currencies.List(ctx); return err })
	g.Go(func() error { var err error; c.PaymentMethods, err = s.stores.PaymentMethods.List(ctx); return err })
	return c, g.Wait()
}

type GuideCatalog struct {
	Languages     []domain.LookupRow   `json:"languages"`
	Nationalities []domain.LookupRow   `json:"nationalities"`
	Guides        []domain.GuideDetail `json:"guides"`
}

func (s *CatalogService) ForGuides(ctx context.Context) (GuideCatalog, error) {
	var c GuideCatalog
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { var err error; c.Languages, err = s.stores.Languages.List(ctx); return err })
	g.Go(func() error { var err error; c.Nationalities, err = s.stores.Nationalities.List(ctx); return err })
	g.Go(func() error { var err error; c.Guides, err = s.stores.Guides.ListDetailed(ctx); return err })
	return c, g.Wait()
}

type RestaurantCatalog struct {
	Cities      []domain.LookupRow      `json:"cities"`
	Restaurants []domain.RestaurantView `json:"restaurants"`
}

func (s *CatalogService) ForRestaurants(ctx context.Context) (RestaurantCatalog, error) {
	var c RestaurantCatalog
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { var err error; c.Cities, err = s.stores.Cities.List(ctx); return err })
	g.Go(func() error { var err error; c.Restaurants, err = s.stores.Restaurants.List(ctx); return err })
	return c, g.Wait()
}

type HousingCatalog struct {
	Cities   []domain.LookupRow   `json:"cities"`
	Housings []domain.HousingView `json:"housings"`
}

func (s *CatalogService) ForHousings(ctx context.Context) (HousingCatalog, error) {
	var c HousingCatalog
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { var err error; c.Cities, err = s.stores.Cities.List(ctx); return err })
	g.Go(func() error { var err error; c.Housings, err = s.stores.Housings.List(ctx); return err })
	return c, g.Wait()
}

type TourCatalog struct {
	Cities []domain.LookupRow    `json:"cities"`
	Tours  []domain.TourWithCity `json:"tours"`
}

func (s *CatalogService) ForTours(ctx context.Context) (TourCatalog, error) {
	var c TourCatalog
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { var err error; c.Cities, err = s.stores.Cities.List(ctx); return err })
	g.Go(func() error { var err error; c.Tours, err = s.stores.Tours.ListWithCity(ctx); return err })
	return c, g.Wait()
}
