package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedRoutes(t *testing.T) {
	r := New()
	r.Get("/products/{id}", "products.show", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	path, ok := r.Path("products.show")
	require.True(t, ok)
	assert.Equal(t, "/products/{id}", path)

	url, err := r.URL("products.show", map[string]string{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "/products/42", url)

	_, err = r.URL("products.show", nil)
	assert.Error(t, err)

	_, err = r.URL("missing", nil)
	assert.Error(t, err)
}

func TestParam(t *testing.T) {
	r := New()
	var got string
	r.Get("/products/{id}", "", func(w http.ResponseWriter, req *http.Request) {
		got = Param(req, "id")
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/abc123", nil))
	assert.Equal(t, "abc123", got)
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var order []string
	mw := func(tag string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, req)
			})
		}
	}

	r := New()
	api := r.Group("/api", mw("group"))
	api.Post("/products", "", func(w http.ResponseWriter, _ *http.Request) {
		order = append(order, "handler")
	}, mw("route"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/products", nil))
	assert.Equal(t, []string{"group", "route", "handler"}, order)
}

func TestNestedGroups(t *testing.T) {
	r := New()
	hit := false
	r.Group("/api").Group("/admin").Put("/products/{id}", "admin.update",
		func(w http.ResponseWriter, _ *http.Request) { hit = true })

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/admin/products/9", nil))
	assert.True(t, hit)

	path, ok := r.Path("admin.update")
	require.True(t, ok)
	assert.Equal(t, "/api/admin/products/{id}", path)
}

func TestMethodNotAllowed(t *testing.T) {
	r := New()
	r.Get("/only-get", "", func(w http.ResponseWriter, _ *http.Request) {})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/only-get", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
