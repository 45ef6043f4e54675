package sessions

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	sessionCookieName = "category-admin-session"

	flashKeyPrefix = "_flash_"

	FlashSuccess = "success"
	FlashError   = "error"
)

var flashStatuses = []string{FlashError, FlashSuccess}

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Status  string
	Message string
}

type SessionStore interface {
	AddFlash(w http.ResponseWriter, r *http.Request, status, message string) error
	PopFlashes(w http.ResponseWriter, r *http.Request) []Flash
}

type CookieSessionStore struct {
	store  *sessions.CookieStore
	logger *zap.Logger
}

func NewCookieSessionStore(logger *zap.Logger, secure bool, keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store, logger: logger}
}

// getSession always returns a usable session; a cookie that fails to decode
// is replaced by a fresh one.
func (c *CookieSessionStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		c.logger.Warn("Error getting session", zap.Error(err))
	}
	return session
}

func (c *CookieSessionStore) AddFlash(w http.ResponseWriter, r *http.Request, status, message string) error {
	session := c.getSession(r)
	session.AddFlash(message, flashKeyPrefix+status)
	return session.Save(r, w)
}

func (c *CookieSessionStore) PopFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	session := c.getSession(r)

	var flashes []Flash
	for _, status := range flashStatuses {
		for _, value := range session.Flashes(flashKeyPrefix + status) {
			if message, ok := value.(string); ok {
				flashes = append(flashes, Flash{Status: status, Message: message})
			}
		}
	}

	if len(flashes) > 0 {
		if err := session.Save(r, w); err != nil {
			c.logger.Error("Error saving session after reading flashes", zap.Error(err))
		}
	}
	return flashes
}
