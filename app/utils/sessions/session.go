package sessions

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "gosales-session"

	flashSuccessKey = "flash_success"
	flashErrorKey   = "flash_error"
)

// FlashStore keeps one-shot notification messages in a cookie session: set
// after a successful write, shown once on the next rendered page.
type FlashStore interface {
	AddSuccess(w http.ResponseWriter, r *http.Request, message string)
	AddError(w http.ResponseWriter, r *http.Request, message string)
	Pop(w http.ResponseWriter, r *http.Request) (success, failure []string)
}

type CookieFlashStore struct {
	store *sessions.CookieStore
}

func NewCookieFlashStore(keyPairs ...[]byte) *CookieFlashStore {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(time.Hour / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieFlashStore{store: store}
}

func (c *CookieFlashStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		// A stale or tampered cookie just means a fresh session.
		log.Printf("FlashStore: error decoding session: %v", err)
	}
	return session
}

func (c *CookieFlashStore) AddSuccess(w http.ResponseWriter, r *http.Request, message string) {
	c.add(w, r, flashSuccessKey, message)
}

func (c *CookieFlashStore) AddError(w http.ResponseWriter, r *http.Request, message string) {
	c.add(w, r, flashErrorKey, message)
}

func (c *CookieFlashStore) add(w http.ResponseWriter, r *http.Request, key, message string) {
	session := c.getSession(r)
	session.AddFlash(message, key)
	if err := session.Save(r, w); err != nil {
		log.Printf("FlashStore: error saving session: %v", err)
	}
}

func (c *CookieFlashStore) Pop(w http.ResponseWriter, r *http.Request) (success, failure []string) {
	session := c.getSession(r)

	for _, flash := range session.Flashes(flashSuccessKey) {
		if msg, ok := flash.(string); ok {
			success = append(success, msg)
		}
	}
	for _, flash := range session.Flashes(flashErrorKey) {
		if msg, ok := flash.(string); ok {
			failure = append(failure, msg)
		}
	}

	if err := session.Save(r, w); err != nil {
		log.Printf("FlashStore: error saving session: %v", err)
	}
	return success, failure
}
