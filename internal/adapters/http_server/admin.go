package httpserver

import "net/http"

// Bootstrap bundles the admin forms load before a create or edit.

func (h *Handlers) adminTeam(w http.ResponseWriter, r *http.Request) {
	c, err := h.Catalog.ForTeam(r.Context())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handlers) adminActivity(w http.ResponseWriter, r *http.Request) {
	c, err := h.Catalog.ForActivity(r.Context())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handlers) adminTourist(w http.ResponseWriter, r *http.Request) {
	c, err := h.Catalog.ForTourist(r.Context())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handlers) adminGuides(w http.ResponseWriter, r *http.Request) {
	c, err := h.Catalog.ForGuides(r.Context())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handlers) adminRestaurants(w http.ResponseWriter, r *http.Request) {
	c, err := h.Catalog.ForRestaurants(r.Context())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handlers) adminHousings(w http.ResponseWriter, r *http.Request) {
	c, err := h.Catalog.ForHousings(r.Context())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handlers) adminTours(w http.ResponseWriter, r *http.Request) {
	c, err := h.Catalog.ForTours(r.Context())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handlers) adminVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Stores.Vehicles.List(r.Context())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *Handlers) listLookup(lr lookupRoute) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := lr.store.List(r.Context())
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}
