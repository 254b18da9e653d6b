package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "contenthub"

	articlesKey = "articles"
	videosKey   = "videos"
	productsKey = "products"
)

// SessionStore keeps browse selections in a signed cookie.
type SessionStore struct {
	store sessions.Store
}

// NewSessionStore signs cookies with secret.
func NewSessionStore(secret string) *SessionStore {
	cs := sessions.NewCookieStore([]byte(secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionStore{store: cs}
}

// session returns the visitor session. A tampered or expired cookie yields a fresh session.
func (s *SessionStore) session(r *http.Request) *sessions.Session {
	sess, err := s.store.Get(r, sessionName)
	if err != nil || sess == nil {
		sess, _ = s.store.New(r, sessionName)
	}
	return sess
}

// loadState decodes the value stored under key, falling back to def.
func loadState[T any](s *SessionStore, r *http.Request, key string, def T) T {
	raw, ok := s.session(r).Values[key].(string)
	if !ok {
		return def
	}
	out := def
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return def
	}
	return out
}

// saveState stores v under key and writes the cookie.
func saveState[T any](s *SessionStore, w http.ResponseWriter, r *http.Request, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	sess := s.session(r)
	sess.Values[key] = string(data)
	return sess.Save(r, w)
}
