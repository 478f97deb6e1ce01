package utils

import (
	"fmt"
	"net/http"
	"net/url"
	"path"
	"slices"
	"strings"
)

// Favicons served from the site root
var RootFavicons = []string{
	"/favicon.svg",
	"/site.webmanifest",
}

// Construct an absolute url given a base url and path
func AbsoluteURL(baseURL, p string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return p
	}
	u.Path = path.Join(u.Path, p)
	if strings.HasSuffix(p, "/") && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// Validates a path
func ValidateFilePath(p string) error {
	if p == "" {
		return fmt.Errorf("no path supplied")
	}

	cleaned := path.Clean(p)
	if cleaned != p {
		return fmt.Errorf("invalid path '%s'", p)
	}

	return nil
}

// SanitizeRelativePath validates and sanitizes a relative path for redirect
func SanitizeRelativePath(redirectPath string) (string, error) {
	// Check length
	if len(redirectPath) > 1024 {
		return "", fmt.Errorf("path too long")
	}

	// Empty defaults to root
	if redirectPath == "" {
		return "/", nil
	}

	// Reject absolute URLs
	if strings.Contains(redirectPath, "://") {
		return "", fmt.Errorf("absolute URLs not allowed")
	}

	// Reject protocol-relative URLs
	if strings.HasPrefix(redirectPath, "//") || strings.HasPrefix(redirectPath, `/\`) {
		return "", fmt.Errorf("protocol-relative URLs not allowed")
	}

	// Parse the path to validate structure
	u, err := url.Parse(redirectPath)
	if err != nil {
		return "", fmt.Errorf("invalid path format: %v", err)
	}

	// Clean the path to prevent directory traversal
	cleanPath := path.Clean("/" + u.Path)

	// Keep the trailing slash, the routes depend on it
	if strings.HasSuffix(u.Path, "/") && cleanPath != "/" {
		cleanPath += "/"
	}

	// Rebuild URL with cleaned path and preserve query parameters
	result := &url.URL{
		Path:     cleanPath,
		RawQuery: u.RawQuery,
	}

	return result.String(), nil
}

func Plural(num int, word string) string {
	if num == 1 {
		return word
	}
	return word + "s"
}

// Check if this is a static file
func IsStatic(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/static/") ||
		slices.Contains(RootFavicons, r.URL.Path)
}

// NeedsData reports whether the route renders a page
// and therefore needs the template data and the navigation
func NeedsData(r *http.Request) bool {

	if IsStatic(r) {
		return false
	}

	if strings.HasSuffix(r.URL.Path, ".txt") {
		return false
	}

	switch r.URL.Path {
	case "/healthcheck", "/health/", "/metrics":
		return false
	}

	return true
}

// HttpError provides shorter handling of http error
func HttpError(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}
