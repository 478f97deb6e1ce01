package preview

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vlatan/block-site/internal/config"
)

func newTestSessions() *Sessions {
	return New(&config.Config{Debug: true, PreviewSessionName: "_preview"})
}

// withCookies copies the cookies set on a response to a new request
func withCookies(rec *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestEnableDisable(t *testing.T) {

	s := newTestSessions()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if s.Enabled(r) {
		t.Fatal("got preview enabled without a cookie")
	}

	w := httptest.NewRecorder()
	if err := s.Enable(w, r); err != nil {
		t.Fatal(err)
	}

	r = withCookies(w)
	if !s.Enabled(r) {
		t.Fatal("got preview disabled, want enabled")
	}

	w = httptest.NewRecorder()
	if err := s.Disable(w, r); err != nil {
		t.Fatal(err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("got cookies %v, want one expired cookie", cookies)
	}
}

func TestForeignCookie(t *testing.T) {

	s := newTestSessions()

	// Signed with a different random key
	other := newTestSessions()
	w := httptest.NewRecorder()
	if err := other.Enable(w, httptest.NewRequest(http.MethodGet, "/", nil)); err != nil {
		t.Fatal(err)
	}

	if s.Enabled(withCookies(w)) {
		t.Error("got preview enabled with a cookie signed by another key")
	}
}

func TestCookieOptions(t *testing.T) {

	tests := []struct {
		name     string
		debug    bool
		secure   bool
		sameSite http.SameSite
	}{
		{"production", false, true, http.SameSiteNoneMode},
		{"debug", true, false, http.SameSiteLaxMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&config.Config{Debug: tt.debug, PreviewSessionName: "_preview"})

			w := httptest.NewRecorder()
			if err := s.Enable(w, httptest.NewRequest(http.MethodGet, "/", nil)); err != nil {
				t.Fatal(err)
			}

			cookies := w.Result().Cookies()
			if len(cookies) != 1 {
				t.Fatalf("got %d cookies, want 1", len(cookies))
			}

			c := cookies[0]
			if c.Secure != tt.secure {
				t.Errorf("got secure %t, want %t", c.Secure, tt.secure)
			}

			if c.SameSite != tt.sameSite {
				t.Errorf("got same site %v, want %v", c.SameSite, tt.sameSite)
			}

			if !c.HttpOnly {
				t.Error("got a cookie readable from scripts")
			}
		})
	}
}
