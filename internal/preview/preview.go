// Package preview keeps the draft mode flag in a signed cookie session
package preview

import (
	"log"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/vlatan/block-site/internal/config"
)

const enabledKey = "enabled"

// Draft sessions are short lived
const maxAge = 60 * 60 * 4

type Sessions struct {
	store sessions.Store
	name  string
}

// New creates the cookie store of the preview sessions.
// Without configured keys random ones are generated,
// so sessions do not survive a restart.
func New(cfg *config.Config) *Sessions {

	authKey := cfg.AuthKey.Bytes
	if len(authKey) == 0 {
		log.Println("AUTH_KEY not set, preview sessions use a random key")
		authKey = securecookie.GenerateRandomKey(64)
	}

	encKey := cfg.EncryptionKey.Bytes
	if len(encKey) == 0 {
		encKey = securecookie.GenerateRandomKey(32)
	}

	store := sessions.NewCookieStore(authKey, encKey)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   !cfg.Debug,
		// The CMS loads the preview in a cross-site iframe
		SameSite: http.SameSiteNoneMode,
	}

	// Browsers reject SameSite=None without Secure
	if cfg.Debug {
		store.Options.SameSite = http.SameSiteLaxMode
	}

	// Sets the cookie and the codecs max age
	store.MaxAge(maxAge)

	return &Sessions{store: store, name: cfg.PreviewSessionName}
}

// Enabled reports whether the request carries an active preview session
func (s *Sessions) Enabled(r *http.Request) bool {

	// Avoid decoding anything when there's no cookie
	if _, err := r.Cookie(s.name); err != nil {
		return false
	}

	session, err := s.store.Get(r, s.name)
	if err != nil {
		return false
	}

	enabled, _ := session.Values[enabledKey].(bool)
	return enabled
}

// Enable starts the preview session
func (s *Sessions) Enable(w http.ResponseWriter, r *http.Request) error {
	// Get always returns a session, even on a decoding error
	session, _ := s.store.Get(r, s.name)
	session.Values[enabledKey] = true
	return session.Save(r, w)
}

// Disable clears the preview session
func (s *Sessions) Disable(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, s.name)
	session.Values = map[any]any{}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
