package httpserver

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) deleteTeam(w http.ResponseWriter, r *http.Request) {
	n, err := h.Stores.Teams.Delete(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if n == 0 {
		writeText(w, http.StatusInternalServerError, "An error occured while deleting the team")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deleteActivity is scoped: the activity must belong to the named team.
func (h *Handlers) deleteActivity(w http.ResponseWriter, r *http.Request) {
	ref, err := h.Stores.Teams.RefBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	n, err := h.Stores.Activities.DeleteScoped(r.Context(), id, ref.ID)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if n == 0 {
		writeText(w, http.StatusInternalServerError, "An error has occured while deleting activity")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deleteTourist verifies the team slug exists, then removes the tourist row.
// Link and payment rows follow via ON DELETE CASCADE.
func (h *Handlers) deleteTourist(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Stores.Teams.RefBySlug(r.Context(), chi.URLParam(r, "slug")); err != nil {
		writeStoreErr(w, err)
		return
	}
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	n, err := h.Stores.Tourists.Delete(r.Context(), id)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if n == 0 {
		writeText(w, http.StatusInternalServerError, "No tourist has been deleted")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) deleteGuide(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	n, err := h.Stores.Guides.Delete(r.Context(), id)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if n == 0 {
		writeText(w, http.StatusInternalServerError, "An error has occured while deleting guide")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) deleteTour(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.Stores.Tours.Delete, "tour")
}

func (h *Handlers) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.Stores.Restaurants.Delete, "restaurant")
}

func (h *Handlers) deleteHousing(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.Stores.Housings.Delete, "housing")
}

func (h *Handlers) deleteVehicle(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.Stores.Vehicles.Delete, "vehicles")
}

func (h *Handlers) deleteLookup(lr lookupRoute) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.deleteByID(w, r, lr.store.Delete, lr.delNoun)
	}
}

func (h *Handlers) deleteByID(w http.ResponseWriter, r *http.Request, del func(ctx context.Context, id int64) (int64, error), noun string) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	n, err := del(r.Context(), id)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if n == 0 {
		writeText(w, http.StatusInternalServerError, "An error has occured while deleting "+noun)
		return
	}
	writeSuccess(w)
}
