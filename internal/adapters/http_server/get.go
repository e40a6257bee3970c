package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"tour_ops/internal/app"
	"tour_ops/internal/domain"
)

func viewerFrom(r *http.Request) *app.Viewer {
	id, ok := identityFrom(r)
	if !ok {
		return nil
	}
	return &app.Viewer{GuideID: id.GuideID, IsAdmin: id.IsAdmin}
}

func (h *Handlers) getTeam(w http.ResponseWriter, r *http.Request) {
	reply, err := h.Teams.Detail(r.Context(), chi.URLParam(r, "slug"), viewerFrom(r))
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (h *Handlers) getTeamActivities(w http.ResponseWriter, r *http.Request) {
	reply, err := h.Teams.Activities(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (h *Handlers) getTeamTourists(w http.ResponseWriter, r *http.Request) {
	v := viewerFrom(r)
	reply, err := h.Teams.Tourists(r.Context(), chi.URLParam(r, "slug"), *v)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (h *Handlers) getGuide(w http.ResponseWriter, r *http.Request) {
	v := viewerFrom(r)
	var onlyID *int64
	if !v.IsAdmin {
		onlyID = &v.GuideID
	}
	gd, err := h.Stores.Guides.GetByUsername(r.Context(), chi.URLParam(r, "username"), onlyID)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gd)
}

func (h *Handlers) getTeams(w http.ResponseWriter, r *http.Request) {
	v := viewerFrom(r)
	today := time.Now().Format("2006-01-02")
	items, err := h.Teams.Today(r.Context(), today, *v)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if len(items) == 0 {
		writeText(w, http.StatusNotFound, "Not found.")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) getTourist(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeText(w, http.StatusNotFound, "Not found")
		return
	}
	tv, err := h.Stores.Tourists.Get(r.Context(), id)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tv)
}

func (h *Handlers) getTours(w http.ResponseWriter, r *http.Request) {
	tours, err := h.Stores.Tours.List(r.Context())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tours)
}

func (h *Handlers) getMain(w http.ResponseWriter, r *http.Request) {
	v := viewerFrom(r)
	page := intQuery(r, "page", 1)
	pageSize := intQuery(r, "pageSize", h.PageSize)
	reply, err := h.Teams.Main(r.Context(), *v, page, pageSize)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (h *Handlers) getFilter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.TeamFilter{
		Page:     intQuery(r, "page", 1),
		PageSize: intQuery(r, "pageSize", h.PageSize),
	}
	if s := q.Get("guide"); s != "" {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			f.GuideID = &id
		}
	}
	if s := q.Get("startDate"); s != "" {
		f.StartDate = &s
	}
	if s := q.Get("endDate"); s != "" {
		f.EndDate = &s
	}
	if q.Get("isToday") != "" {
		today := time.Now().Format("2006-01-02")
		f.Today = &today
	}
	if s := q.Get("upcoming"); s != "" {
		f.Upcoming = &s
	}
	if s := q.Get("past"); s != "" {
		f.Past = &s
	}

	reply, err := h.Teams.Filter(r.Context(), f)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func intQuery(r *http.Request, key string, def int) int {
	if s := r.URL.Query().Get(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}
