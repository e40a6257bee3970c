package httpserver

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"tour_ops/internal/adapters/observability"
	"tour_ops/internal/auth"
	"tour_ops/internal/domain"
)

func (h *Handlers) postTeam(w http.ResponseWriter, r *http.Request) {
	p := payload[teamPayload](r)
	created, err := h.Stores.Teams.Insert(r.Context(), p.toDomain())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) postActivity(w http.ResponseWriter, r *http.Request) {
	p := payload[activityPayload](r)
	id, err := h.Stores.Activities.Insert(r.Context(), p.toDomain())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handlers) postTourist(w http.ResponseWriter, r *http.Request) {
	p := payload[touristPayload](r)
	if err := h.Enroll.Enroll(r.Context(), p.toEnrollment()); err != nil {
		writeStoreErr(w, err)
		return
	}
	writeText(w, http.StatusCreated, "Success!")
}

func (h *Handlers) postGuide(w http.ResponseWriter, r *http.Request) {
	p := payload[guidePayload](r)
	hash, err := auth.HashPassword(p.Password)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if err := h.Stores.Guides.Insert(r.Context(), p.toDomain(), hash); err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

func (h *Handlers) postTour(w http.ResponseWriter, r *http.Request) {
	p := payload[tourPayload](r)
	if err := h.Stores.Tours.Insert(r.Context(), p.toDomain()); err != nil {
		writeStoreErr(w, err)
		return
	}
	writeSuccess(w)
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	p := payload[loginPayload](r)
	token, err := h.Auth.Login(r.Context(), p.Username, p.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		observability.ObserveAuth("login_fail")
		writeText(w, http.StatusBadRequest, "Invalid username or password")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("login failed")
		writeText(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	observability.ObserveAuth("login_ok")
	writeText(w, http.StatusOK, token)
}

func (h *Handlers) postRestaurant(w http.ResponseWriter, r *http.Request) {
	var p domain.Restaurant
	if err := decodeJSON(r, &p); err != nil {
		writeValidation(w, err)
		return
	}
	id, err := h.Stores.Restaurants.Insert(r.Context(), p)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handlers) postHousing(w http.ResponseWriter, r *http.Request) {
	var p domain.Housing
	if err := decodeJSON(r, &p); err != nil {
		writeValidation(w, err)
		return
	}
	id, err := h.Stores.Housings.Insert(r.Context(), p)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handlers) postVehicle(w http.ResponseWriter, r *http.Request) {
	var p domain.Vehicle
	if err := decodeJSON(r, &p); err != nil {
		writeValidation(w, err)
		return
	}
	id, err := h.Stores.Vehicles.Insert(r.Context(), p)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handlers) postLookup(lr lookupRoute) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p struct {
			Value string `json:"value"`
		}
		if err := decodeJSON(r, &p); err != nil {
			writeValidation(w, err)
			return
		}
		id, err := lr.store.Insert(r.Context(), p.Value)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
	}
}
