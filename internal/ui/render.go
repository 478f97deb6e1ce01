package ui

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"path"

	"github.com/vlatan/block-site/internal/models"
	"github.com/vlatan/block-site/internal/utils"
)

// Media types of the templates, by extension
var templateTypes = map[string]string{
	".xml": "text/xml; charset=utf-8",
	".xsl": "text/xsl; charset=utf-8",
}

// send writes a fully rendered body, headers first.
// Once the body is out failures can only be logged.
func send(w http.ResponseWriter, r *http.Request, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	if _, err := w.Write(body); err != nil {
		log.Printf("Failed to write the response on URI '%s': %v", r.RequestURI, err)
	}
}

// WriteJSON encodes the data and writes it with a 200
func (s *service) WriteJSON(w http.ResponseWriter, r *http.Request, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to encode JSON response on URI '%s': %v", r.RequestURI, err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}
	send(w, r, http.StatusOK, "application/json", body)
}

// RenderHTML executes a template into a buffer first,
// so a template failing midway still ends up a clean 500.
func (s *service) RenderHTML(w http.ResponseWriter, r *http.Request, templateName string, data *models.TemplateData) {

	tmpl, ok := s.templates[templateName]
	if !ok {
		log.Printf("Could not find the '%s' template on URI '%s'", templateName, r.RequestURI)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, templateName, data); err != nil {
		log.Printf("Failed to execute the template '%s' on URI '%s': %v", templateName, r.RequestURI, err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	contentType, ok := templateTypes[path.Ext(templateName)]
	if !ok {
		contentType = "text/html; charset=utf-8"
	}

	send(w, r, http.StatusOK, contentType, buf.Bytes())
}
