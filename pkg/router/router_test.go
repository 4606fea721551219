package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestNamedRoutesAndURL(t *testing.T) {
	r := New()
	r.Get("/users/{id}", "users.show", ok)

	path, found := r.Path("users.show")
	if !found || path != "/users/{id}" {
		t.Fatalf("Path() = %q, %v", path, found)
	}

	url, err := r.URL("users.show", map[string]string{"id": "42"})
	if err != nil || url != "/users/42" {
		t.Fatalf("URL() = %q, %v", url, err)
	}

	if _, err := r.URL("users.show", nil); err == nil {
		t.Fatal("expected error for missing params")
	}
	if _, err := r.URL("missing.route", nil); err == nil {
		t.Fatal("expected error for unknown route")
	}
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var order []string
	mw := func(tag string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := New()
	api := r.Group("/api", mw("group"))
	api.Get("/ping", "ping", ok, mw("route"))

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(order) != 2 || order[0] != "group" || order[1] != "route" {
		t.Fatalf("middleware order = %v", order)
	}
}

func TestNestedGroups(t *testing.T) {
	r := New()
	api := r.Group("/api")
	admin := api.Group("/admin")
	admin.Get("/users", "admin.users", ok)

	path, found := r.Path("admin.users")
	if !found || path != "/api/admin/users" {
		t.Fatalf("nested group path = %q, %v", path, found)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRoutesListing(t *testing.T) {
	r := New()
	r.Get("/b", "b", ok)
	r.Post("/a", "a", ok)
	r.Put("/a", "a.update", ok)

	infos := r.Routes()
	if len(infos) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(infos))
	}
	// Sorted by path then method: POST /a, PUT /a, GET /b.
	if infos[0].Path != "/a" || infos[0].Method != http.MethodPost {
		t.Fatalf("first route = %+v", infos[0])
	}
	if infos[2].Path != "/b" {
		t.Fatalf("last route = %+v", infos[2])
	}
}
