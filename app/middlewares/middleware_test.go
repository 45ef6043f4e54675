package middlewares

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Rakhulsr/go-category-admin/app/helpers"
	"github.com/Rakhulsr/go-category-admin/app/utils/metrics"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestMethodOverrideMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		override string
		want     string
	}{
		{"delete override", http.MethodPost, "DELETE", http.MethodDelete},
		{"lowercase put", http.MethodPost, "put", http.MethodPut},
		{"unknown verb ignored", http.MethodPost, "TRACE", http.MethodPost},
		{"no override", http.MethodPost, "", http.MethodPost},
		{"only POST is rewritten", http.MethodGet, "DELETE", http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := MethodOverrideMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Method
			}))

			h.ServeHTTP(httptest.NewRecorder(), formRequest(tt.method, "/admin/categories/1", url.Values{"_method": {tt.override}}))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMethodOverrideMiddleware_FormStillReadable(t *testing.T) {
	var name string
	h := MethodOverrideMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		name = r.PostFormValue("name")
	}))

	h.ServeHTTP(httptest.NewRecorder(), formRequest(http.MethodPost, "/admin/categories/1", url.Values{
		"_method": {"PUT"},
		"name":    {"Books"},
	}))
	assert.Equal(t, "Books", name)
}

func TestAdminAuthMiddleware(t *testing.T) {
	hash, err := helpers.HashPassword("letmein")
	require.NoError(t, err)

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := AdminAuthMiddleware("admin", hash, zap.NewNop())(ok)

	tests := []struct {
		name     string
		user     string
		password string
		setAuth  bool
		want     int
	}{
		{"valid", "admin", "letmein", true, http.StatusNoContent},
		{"wrong password", "admin", "nope", true, http.StatusUnauthorized},
		{"wrong user", "root", "letmein", true, http.StatusUnauthorized},
		{"no credentials", "", "", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.setAuth {
				req.SetBasicAuth(tt.user, tt.password)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusUnauthorized {
				assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")
			}
		})
	}
}

func TestAdminAuthMiddleware_DisabledWithoutHash(t *testing.T) {
	h := AdminAuthMiddleware("admin", "", zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	collector := metrics.NewCollector("test")

	router := mux.NewRouter()
	router.Use(MetricsMiddleware(collector))
	router.HandleFunc("/admin/categories/{id}/edit", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"a", "b"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/categories/"+id+"/edit", nil))
	}

	counter := collector.HTTPRequests.WithLabelValues(http.MethodGet, "/admin/categories/{id}/edit", "200")
	assert.Equal(t, 2.0, testutil.ToFloat64(counter))
}

func TestRequestLogger_PassesThroughStatus(t *testing.T) {
	h := RequestLogger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/categories", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/categories", rec.Header().Get("Location"))
}
