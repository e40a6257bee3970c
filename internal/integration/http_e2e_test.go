//go:build integration || !unit

package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"golang.org/x/time/rate"

	server "tour_ops/internal/adapters/http_server"
	"tour_ops/internal/app"
	"tour_ops/internal/auth"
	"tour_ops/internal/domain"
	mysqlrepo "tour_ops/internal/storage/mysql"
	"tour_ops/internal/validation"
)

// ---------- helpers ----------
func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/sql)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

type client struct {
	t     *testing.T
	base  string
	token string
}

func (c *client) do(method, path string, body any) (*http.Response, string) {
	c.t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.base+path, rd)
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("x-auth-token", c.token)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		c.t.Fatalf("read body: %v", err)
	}
	return res, string(raw)
}

func (c *client) want(method, path string, body any, status int) string {
	c.t.Helper()
	res, raw := c.do(method, path, body)
	if res.StatusCode != status {
		c.t.Fatalf("%s %s: status %d, want %d (body %q)", method, path, res.StatusCode, status, raw)
	}
	return raw
}

// ---------- the test ----------
func TestHTTP_EndToEnd_TeamLifecycle(t *testing.T) {
	// Start isolated MySQL container
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=tour_ops",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?multiStatements=true&charset=utf8mb4,utf8&loc=UTC&clientFoundRows=true",
		"root", hostPort, "tour_ops")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)

	// Boot the real stack on a test listener.
	stores := mysqlrepo.NewStores(db)
	verifier := auth.NewVerifier("e2e-secret", time.Hour)
	srv := server.New()
	srv.MountHandlers(&server.Handlers{
		Stores:   stores,
		Teams:    app.NewTeamService(stores),
		Enroll:   app.NewEnrollService(stores.Tourists),
		Auth:     app.NewAuthService(stores.Guides, verifier),
		Catalog:  app.NewCatalogService(stores),
		Verifier: verifier,
		Val:      validation.New(),
		Limiter:  rate.NewLimiter(rate.Limit(10), 10),
		PageSize: 5,
	})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	// Seed reference rows and an admin account directly through the stores.
	ctx := context.Background()
	cityID, _ := stores.Cities.Insert(ctx, "Istanbul")
	langID, _ := stores.Languages.Insert(ctx, "English")
	natID, _ := stores.Nationalities.Insert(ctx, "Turkish")
	hash, err := auth.HashPassword("admin-pass-123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := stores.Guides.Insert(ctx, domain.GuideInput{
		Name: "Root Admin", Username: "root", LanguageID: langID,
		NationalityID: natID, PassportNo: "A0000001",
		Email: "root@example.com", Phone: "+90 555 000 0000", IsAdmin: true,
	}, hash); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	if err := stores.Tours.Insert(ctx, domain.Tour{
		Tour: "Bosphorus Classic", CityID: cityID, NumberOfDays: 5, NumberOfNights: 4,
	}); err != nil {
		t.Fatalf("seed tour: %v", err)
	}
	tours, err := stores.Tours.List(ctx)
	if err != nil || len(tours) != 1 {
		t.Fatalf("list tours: %v", err)
	}
	tourID := tours[0].ID

	anon := &client{t: t, base: ts.URL}

	// Gates before any token exists.
	if body := anon.want("GET", "/main", nil, http.StatusUnauthorized); body != "User is not allowed" {
		t.Fatalf("missing token body: %q", body)
	}
	broken := &client{t: t, base: ts.URL, token: "not.a.jwt"}
	if body := broken.want("GET", "/main", nil, http.StatusBadRequest); body != "Broken token" {
		t.Fatalf("broken token body: %q", body)
	}

	// Login. Bad credentials first, then the real ones.
	if body := anon.want("POST", "/post/login",
		map[string]string{"username": "root", "password": "wrong-pass-123"},
		http.StatusBadRequest); body != "Invalid username or password" {
		t.Fatalf("bad login body: %q", body)
	}
	token := anon.want("POST", "/post/login",
		map[string]string{"username": "root", "password": "admin-pass-123"}, http.StatusOK)
	if strings.Count(token, ".") != 2 {
		t.Fatalf("token does not look like a JWT: %q", token)
	}
	admin := &client{t: t, base: ts.URL, token: token}

	// Validation middleware rejects before the handler runs.
	raw := admin.want("POST", "/post/team", map[string]any{"tourId": tourID}, http.StatusBadRequest)
	var vr struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Errors  []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	if err := json.Unmarshal([]byte(raw), &vr); err != nil {
		t.Fatalf("decode validation reply: %v (%q)", err, raw)
	}
	if vr.Success || vr.Message != "Validation failed" || len(vr.Errors) == 0 {
		t.Fatalf("validation reply: %+v", vr)
	}

	// Create a team as admin.
	teamBody := map[string]any{
		"team":     "BC-2026-09",
		"tourId":   tourID,
		"startsAt": "2026-09-01 10:00:00",
		"endsAt":   "2026-09-05 18:00:00",
		"guideId":  1,
	}
	raw = admin.want("POST", "/post/team", teamBody, http.StatusCreated)
	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal([]byte(raw), &created); err != nil || created.ID == 0 {
		t.Fatalf("created team reply: %v (%q)", err, raw)
	}

	// Onboard a regular guide through the API, then log in as them.
	guideBody := map[string]any{
		"name": "Ayse Demir", "username": "ayse", "languageId": langID,
		"nationalityId": natID, "passportNo": "G1234567",
		"email": "ayse@example.com", "phone": "+90 555 000 0001",
		"birth": "1990-04-12", "isAdmin": false,
		"intimate": "Mehmet Demir", "intimacy": "Spouse", "intimatePhone": "+90 555 000 0002",
		"password": "guide-pass-123", "rePassword": "guide-pass-123",
	}
	admin.want("POST", "/post/guide", guideBody, http.StatusCreated)
	gtok := anon.want("POST", "/post/login",
		map[string]string{"username": "ayse", "password": "guide-pass-123"}, http.StatusOK)
	guide := &client{t: t, base: ts.URL, token: gtok}

	// Valid body with a non-admin token stops at the admin gate.
	teamBody["team"] = "BC-2026-10"
	if body := guide.want("POST", "/post/team", teamBody, http.StatusUnauthorized); body != "Only admin is allowed" {
		t.Fatalf("non-admin body: %q", body)
	}

	// The team is not the guide's own, so the detail read hides it.
	guide.want("GET", "/teams/BC-2026-09", nil, http.StatusNotFound)

	// Admin detail read composes the edit catalogs next to the team.
	raw = admin.want("GET", "/teams/BC-2026-09", nil, http.StatusOK)
	var detail struct {
		Team struct {
			ID   int64  `json:"id"`
			Team string `json:"team"`
			Tour string `json:"tour"`
		} `json:"team"`
		Tours  []json.RawMessage `json:"tours"`
		Guides []json.RawMessage `json:"guides"`
	}
	if err := json.Unmarshal([]byte(raw), &detail); err != nil {
		t.Fatalf("decode detail: %v (%q)", err, raw)
	}
	if detail.Team.Team != "BC-2026-09" || detail.Team.Tour != "Bosphorus Classic" {
		t.Fatalf("detail: %+v", detail.Team)
	}
	if len(detail.Tours) == 0 || len(detail.Guides) == 0 {
		t.Fatalf("admin detail misses catalogs: %q", raw)
	}

	// Update by slug, body carries the new state.
	teamBody["team"] = "BC-2026-09"
	teamBody["endsAt"] = "2026-09-06 18:00:00"
	if body := admin.want("PUT", "/put/teams/BC-2026-09", teamBody, http.StatusOK); body != "The team has been updated successfuly!" {
		t.Fatalf("update body: %q", body)
	}

	// Delete, then the slug stops resolving and a repeat delete reports it.
	admin.want("DELETE", "/delete/teams/BC-2026-09", nil, http.StatusNoContent)
	if body := admin.want("GET", "/teams/BC-2026-09", nil, http.StatusNotFound); body != "Not found" {
		t.Fatalf("after delete: %q", body)
	}
	if body := admin.want("DELETE", "/delete/teams/BC-2026-09", nil, http.StatusInternalServerError); body != "An error occured while deleting the team" {
		t.Fatalf("repeat delete body: %q", body)
	}
}
