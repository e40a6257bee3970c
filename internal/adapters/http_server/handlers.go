package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"tour_ops/internal/app"
	"tour_ops/internal/auth"
	"tour_ops/internal/domain"
	"tour_ops/internal/validation"
)

type Handlers struct {
	Stores   domain.Stores
	Teams    *app.TeamService
	Enroll   *app.EnrollService
	Auth     *app.AuthService
	Catalog  *app.CatalogService
	Verifier *auth.Verifier
	Val      *validation.Validator
	Limiter  *rate.Limiter
	PageSize int
}

// lookupRoute drives the generic handlers for one flat id→label table.
// putKey is the body key the update payload carries the label under, delNoun
// the noun used in the delete failure message.
type lookupRoute struct {
	path    string
	putKey  string
	delNoun string
	store   domain.LookupStore
}

func (h *Handlers) lookupRoutes() []lookupRoute {
	return []lookupRoute{
		{"cities", "city", "city", h.Stores.Cities},
		{"nationalities", "nationality", "nationalities", h.Stores.Nationalities},
		{"currencies", "currency", "currencies", h.Stores.Currencies},
		{"airports", "airport", "airports", h.Stores.Airports},
		{"languages", "language", "languages", h.Stores.Languages},
		{"genders", "gender", "genders", h.Stores.Genders},
		{"payment-methods", "method", "payment method", h.Stores.PaymentMethods},
	}
}

func (s *Server) MountHandlers(h *Handlers) {
	v := h.Verifier

	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Reads at the root. Gate per route: the team page degrades by role
	// instead of rejecting, the rest require a login.
	s.mux.With(OptionalAuth(v)).Get("/teams/{slug}", h.getTeam)
	s.mux.Get("/teams/{slug}/activities", h.getTeamActivities)
	s.mux.With(RequireAuth(v)).Get("/teams/{slug}/tourists", h.getTeamTourists)
	s.mux.With(RequireAuth(v)).Get("/guides/{username}", h.getGuide)
	s.mux.With(RequireAuth(v)).Get("/teams", h.getTeams)
	s.mux.With(RequireAuth(v)).Get("/tourists/{id}", h.getTourist)
	s.mux.With(RequireAdmin(v)).Get("/tours", h.getTours)
	s.mux.With(RequireAuth(v)).Get("/main", h.getMain)
	s.mux.With(RequireAuth(v)).Get("/filter", h.getFilter)

	// Creates. Validation runs before the admin gate so a broken payload is
	// reported even to a caller the gate would reject.
	s.mux.Route("/post", func(r chi.Router) {
		r.With(ValidateBody[teamPayload](h.Val), RequireAdmin(v)).Post("/team", h.postTeam)
		r.With(ValidateBody[activityPayload](h.Val), RequireAdmin(v)).Post("/activity", h.postActivity)
		r.With(ValidateBody[touristPayload](h.Val), RequireAdmin(v)).Post("/tourist", h.postTourist)
		r.With(ValidateBody[guidePayload](h.Val), RequireAdmin(v)).Post("/guide", h.postGuide)
		r.With(ValidateBody[tourPayload](h.Val), RequireAdmin(v)).Post("/tour", h.postTour)
		r.With(ValidateBody[loginPayload](h.Val), RateLimit(h.Limiter)).Post("/login", h.login)
		r.With(RequireAdmin(v)).Post("/restaurant", h.postRestaurant)
		r.With(RequireAdmin(v)).Post("/housing", h.postHousing)
		r.With(RequireAdmin(v)).Post("/vehicle", h.postVehicle)
		for _, lr := range h.lookupRoutes() {
			r.With(RequireAdmin(v)).Post("/"+lr.path, h.postLookup(lr))
		}
	})

	// Admin bootstrap bundles: everything a create form needs in one reply.
	s.mux.Route("/admin", func(r chi.Router) {
		r.Use(RequireAdmin(v))
		r.Get("/team", h.adminTeam)
		r.Get("/activity", h.adminActivity)
		r.Get("/tourist", h.adminTourist)
		r.Get("/guides", h.adminGuides)
		r.Get("/restaurants", h.adminRestaurants)
		r.Get("/housings", h.adminHousings)
		r.Get("/tours", h.adminTours)
		r.Get("/vehicles", h.adminVehicles)
		for _, lr := range h.lookupRoutes() {
			r.Get("/"+lr.path, h.listLookup(lr))
		}
	})

	s.mux.Route("/put", func(r chi.Router) {
		r.Use(RequireAdmin(v))
		r.Put("/teams/{slug}", h.putTeam)
		r.Put("/activities/{id}", h.putActivity)
		r.Put("/tourists/{id}", h.putTourist)
		r.Put("/guides/{id}", h.putGuide)
		r.Put("/tours", h.putTour)
		r.Put("/restaurants", h.putRestaurant)
		r.Put("/housings", h.putHousing)
		r.Put("/vehicles", h.putVehicle)
		for _, lr := range h.lookupRoutes() {
			r.Put("/"+lr.path, h.putLookup(lr))
		}
	})

	s.mux.Route("/delete", func(r chi.Router) {
		r.Use(RequireAdmin(v))
		r.Delete("/teams/{slug}", h.deleteTeam)
		r.Delete("/teams/{slug}/activity/{id}", h.deleteActivity)
		r.Delete("/teams/{slug}/tourist/{id}", h.deleteTourist)
		r.Delete("/guides/{id}", h.deleteGuide)
		r.Delete("/tours/{id}", h.deleteTour)
		r.Delete("/restaurants/{id}", h.deleteRestaurant)
		r.Delete("/housings/{id}", h.deleteHousing)
		r.Delete("/vehicles/{id}", h.deleteVehicle)
		for _, lr := range h.lookupRoutes() {
			r.Delete("/"+lr.path+"/{id}", h.deleteLookup(lr))
		}
	})
}
