package preview

import (
	"crypto/subtle"
	"log"
	"net/http"
	"net/url"

	"github.com/vlatan/block-site/internal/utils"
)

// Handle /preview/enable?secret=...&redirect=...
// or /preview/enable?secret=...&collection=...&slug=...
// The CMS sends editors here with the shared secret.
func (s *Service) EnableHandler(w http.ResponseWriter, r *http.Request) {

	secret := r.URL.Query().Get("secret")
	if secret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(s.config.PayloadSecret)) != 1 {
		log.Printf("Invalid preview secret on '%s'", r.URL.Path)
		utils.HttpError(w, http.StatusUnauthorized)
		return
	}

	redirect, err := s.redirectPath(r)
	if err != nil {
		log.Printf("Invalid preview redirect on '%s': %v", r.URL.Path, err)
		utils.HttpError(w, http.StatusBadRequest)
		return
	}

	if err := s.sessions.Enable(w, r); err != nil {
		log.Printf("Unable to save the preview session: %v", err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, redirect, http.StatusTemporaryRedirect)
}

// Handle /preview/disable?redirect=...
func (s *Service) DisableHandler(w http.ResponseWriter, r *http.Request) {

	redirect, err := s.redirectPath(r)
	if err != nil {
		redirect = "/"
	}

	if err := s.sessions.Disable(w, r); err != nil {
		log.Printf("Unable to clear the preview session: %v", err)
	}

	http.Redirect(w, r, redirect, http.StatusTemporaryRedirect)
}

// redirectPath validates the redirect target, only local paths are allowed.
// Without an explicit target the live preview URL of collection and slug is used.
func (s *Service) redirectPath(r *http.Request) (string, error) {

	query := r.URL.Query()
	redirect := query.Get("redirect")

	if redirect == "" && query.Get("slug") != "" {
		u, err := url.Parse(s.config.LivePreviewURL(query.Get("collection"), query.Get("slug")))
		if err != nil {
			return "", err
		}
		redirect = u.Path
	}

	if redirect == "" {
		return "/", nil
	}

	return utils.SanitizeRelativePath(redirect)
}
