package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tour_ops/internal/auth"
	"tour_ops/internal/domain"
)

// Every update checks the affected-row count; touching no row reports a
// write failure rather than silently succeeding.

func (h *Handlers) putTeam(w http.ResponseWriter, r *http.Request) {
	var p teamPayload
	if err := decodeJSON(r, &p); err != nil {
		writeValidation(w, err)
		return
	}
	n, err := h.Stores.Teams.Update(r.Context(), chi.URLParam(r, "slug"), p.toDomain())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if n == 0 {
		writeText(w, http.StatusInternalServerError, "An error occured while updating team")
		return
	}
	writeText(w, http.StatusOK, "The team has been updated successfuly!")
}

func (h *Handlers) putActivity(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	var p activityPayload
	if err := decodeJSON(r, &p); err != nil {
		writeValidation(w, err)
		return
	}
	n, err := h.Stores.Activities.Update(r.Context(), id, p.toDomain())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if n == 0 {
		writeText(w, http.StatusInternalServerError, "An error occured while updating activity")
		return
	}
	writeText(w, http.StatusOK, "The activity has been updated successfully")
}

func (h *Handlers) putTourist(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	var p touristUpdatePayload
	if err := decodeJSON(r, &p); err != nil {
		writeValidation(w, err)
		return
	}
	pay := domain.PaymentUpdate{Amount: p.Amount, IsPayed: p.IsPayed, CurrencyID: p.CurrencyID}
	n, err := h.Stores.Tourists.Update(r.Context(), id, p.Tourist, pay)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if n == 0 {
		writeText(w, http.StatusInternalServerError, "An error occured while updating tourist")
		return
	}
	writeText(w, http.StatusOK, "The tourist has been updated successfuly!")
}

func (h *Handlers) putGuide(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	var p guideUpdatePayload
	if err := decodeJSON(r, &p); err != nil {
		writeValidation(w, err)
		return
	}
	hash, err := auth.HashPassword(p.Password)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	n, err := h.Stores.Guides.Update(r.Context(), id, p.toDomain(), hash)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if n == 0 {
		writeText(w, http.StatusInternalServerError, "An error has occured")
		return
	}
	writeText(w, http.StatusOK, "The guide has been updated successfuly!")
}

func (h *Handlers) putTour(w http.ResponseWriter, r *http.Request) {
	var p tourUpdatePayload
	if err := decodeJSON(r, &p); err != nil {
		writeValidation(w, err)
		return
	}
	n, err := h.Stores.Tours.Update(r.Context(), p.ID, p.Tour)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if n == 0 {
		writeText(w, http.StatusInternalServerError, "An error occured while updating tour")
		return
	}
	writeText(w, http.StatusOK, "The tour has been updated successfuly!")
}

func (h *Handlers) putRestaurant(w http.ResponseWriter, r *http.Request) {
	var p restaurantUpdatePayload
	if err := decodeJSON(r, &p); err != nil {
		writeValidation(w, err)
		return
	}
	n, err := h.Stores.Restaurants.Update(r.Context(), p.ID, p.Restaurant)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if n == 0 {
		writeText(w, http.StatusInternalServerError, "An error occured while updating restaurant")
		return
	}
	writeText(w, http.StatusOK, "The restaurant has been updated successfully")
}

func (h *Handlers) putHousing(w http.ResponseWriter, r *http.Request) {
	var p housingUpdatePayload
	if err := decodeJSON(r, &p); err != nil {
		writeValidation(w, err)
		return
	}
	n, err := h.Stores.Housings.Update(r.Context(), p.ID, p.Housing)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if n == 0 {
		writeText(w, http.StatusInternalServerError, "An error occured while updating housing")
		return
	}
	writeText(w, http.StatusOK, "The housing has been updated successfully")
}

func (h *Handlers) putVehicle(w http.ResponseWriter, r *http.Request) {
	var p vehicleUpdatePayload
	if err := decodeJSON(r, &p); err != nil {
		writeValidation(w, err)
		return
	}
	n, err := h.Stores.Vehicles.Update(r.Context(), p.ID, p.Vehicle)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if n == 0 {
		writeText(w, http.StatusInternalServerError, "An error occured while updating vehicle")
		return
	}
	writeText(w, http.StatusOK, "The vehicle has been updated successfuly!")
}

func (h *Handlers) putLookup(lr lookupRoute) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var m map[string]any
		if err := decodeJSON(r, &m); err != nil {
			writeValidation(w, err)
			return
		}
		id, _ := m["id"].(float64)
		value, _ := m[lr.putKey].(string)
		n, err := lr.store.Update(r.Context(), int64(id), value)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		if n == 0 {
			writeText(w, http.StatusInternalServerError, "An error occured while updating "+lr.putKey)
			return
		}
		writeSuccess(w)
	}
}
