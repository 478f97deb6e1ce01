package misc

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"slices"
	"strings"

	"github.com/vlatan/block-site/internal/utils"
	"github.com/vlatan/block-site/web"
)

// TextHandler handles text files such as robots.txt
func (s *Service) TextHandler(w http.ResponseWriter, r *http.Request) {

	// Validate the path
	if err := utils.ValidateFilePath(r.URL.Path); err != nil {
		http.NotFound(w, r)
		return
	}

	// Check if the text file exists
	textFile, exists := s.ui.TextFiles()[r.URL.Path]
	if !exists {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", textFile.MediaType)
	if _, err := w.Write(textFile.Bytes); err != nil {
		log.Printf("Failed to write response to %q: %v", r.URL.Path, err)
	}
}

// Simple liveness check
func (s *Service) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Robots-Tag", "noindex")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Printf("Failed to write response on '%s'; %v", r.URL.Path, err)
	}
}

// CMS and Redis health status
func (s *Service) HealthHandler(w http.ResponseWriter, r *http.Request) {

	redisStatus := map[string]any{"status": "disabled"}
	if s.rdb != nil {
		redisStatus = s.rdb.Health(r.Context())
	}

	data := map[string]any{
		"cms_status":    s.cms.Health(r.Context()),
		"redis_status":  redisStatus,
		"server_status": getServerStats(),
	}

	w.Header().Set("X-Robots-Tag", "noindex")
	w.Header().Set("Cache-Control", "no-store")

	// The CMS is the one dependency the site can't do without
	if status, _ := data["cms_status"].(map[string]any)["status"].(string); status != "healthy" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	s.ui.WriteJSON(w, r, data)
}

// Handle static files
func (s *Service) StaticHandler(w http.ResponseWriter, r *http.Request) {

	// Validate the path
	if err := utils.ValidateFilePath(r.URL.Path); err != nil {
		http.NotFound(w, r)
		return
	}

	// Favicons are requested from the root but live in the static dir
	name := r.URL.Path
	if slices.Contains(utils.RootFavicons, name) {
		name = "/static/favicons" + name
	}

	// Get the file information
	fileInfo, ok := s.ui.StaticFiles()[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	// Set long max age cache conttrol and vary cache based on compression
	w.Header().Set("Cache-Control", "public, max-age=31536000")
	w.Header().Set("Vary", "Accept-Encoding")
	w.Header().Set("Etag", fmt.Sprintf(`"%s"`, fileInfo.Etag))

	// Return 304 not modified if etag match
	noneMatch := strings.Trim(r.Header.Get("If-None-Match"), `"`)
	if noneMatch == fileInfo.Etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	// Files we did not minify are served straight from the embedded FS
	if len(fileInfo.Bytes) == 0 {
		http.ServeFileFS(w, r, web.Files, strings.TrimPrefix(name, "/"))
		return
	}

	w.Header().Set("Content-Type", fileInfo.MediaType)

	// Check if the client accepts gzip
	if strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") && len(fileInfo.Compressed) > 0 {
		w.Header().Set("Content-Encoding", "gzip")
		http.ServeContent(w, r, name, fileInfo.ModTime, bytes.NewReader(fileInfo.Compressed))
		return
	}

	http.ServeContent(w, r, name, fileInfo.ModTime, bytes.NewReader(fileInfo.Bytes))
}
