package sessions

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore() *CookieSessionStore {
	return NewCookieSessionStore(zap.NewNop(), false, []byte("0123456789abcdef0123456789abcdef"))
}

// carryCookies forwards the last cookie of each name, like a browser would.
func carryCookies(from *httptest.ResponseRecorder, to *http.Request) {
	latest := map[string]*http.Cookie{}
	var order []string
	for _, c := range from.Result().Cookies() {
		if _, seen := latest[c.Name]; !seen {
			order = append(order, c.Name)
		}
		latest[c.Name] = c
	}
	for _, name := range order {
		to.AddCookie(latest[name])
	}
}

func TestCookieSessionStore_FlashSurvivesOneRedirect(t *testing.T) {
	store := newTestStore()

	addRec := httptest.NewRecorder()
	addReq := httptest.NewRequest(http.MethodPost, "/admin/categories", nil)
	require.NoError(t, store.AddFlash(addRec, addReq, FlashSuccess, "Category added successfully"))
	require.NoError(t, store.AddFlash(addRec, addReq, FlashError, "Something odd"))

	readRec := httptest.NewRecorder()
	readReq := httptest.NewRequest(http.MethodGet, "/admin/categories", nil)
	carryCookies(addRec, readReq)

	flashes := store.PopFlashes(readRec, readReq)
	assert.Equal(t, []Flash{
		{Status: FlashError, Message: "Something odd"},
		{Status: FlashSuccess, Message: "Category added successfully"},
	}, flashes)

	againRec := httptest.NewRecorder()
	againReq := httptest.NewRequest(http.MethodGet, "/admin/categories", nil)
	carryCookies(readRec, againReq)

	assert.Empty(t, store.PopFlashes(againRec, againReq))
}

func TestCookieSessionStore_TamperedCookieStartsFresh(t *testing.T) {
	store := newTestStore()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()

	assert.Empty(t, store.PopFlashes(rec, req))
	require.NoError(t, store.AddFlash(rec, req, FlashError, "still works"))
}
