package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/vlatan/block-site/internal/models"
	"github.com/vlatan/block-site/internal/utils"
)

// Headings and texts of the errors served via template
var errorPages = map[int]models.HTMLErrorData{
	http.StatusBadRequest: {
		Heading: "Bad request",
		Text:    "Your request was probably malformed.",
	},
	http.StatusForbidden: {
		Heading: "Access forbidden",
		Text:    "You are not allowed to see this page.",
	},
	http.StatusNotFound: {
		Heading: "Page not found",
		Text:    "That page does not exist. Please try a different location.",
	},
	http.StatusMethodNotAllowed: {
		Heading: "Method not allowed",
		Text:    "Use the appropriate method and try again.",
	},
	http.StatusInternalServerError: {
		Heading: "Something went wrong",
		Text:    "Sorry about that. We're working on fixing this.",
	},
}

// ExecuteErrorTemplate executes error.html template
// A wrapper around tmpl.ExecuteTemplate
func (s *service) ExecuteErrorTemplate(w io.Writer, status int, data *models.TemplateData) error {

	// Check for the error template
	tmpl, exists := s.templates["error.html"]
	if !exists {
		return errors.New("error.html template does not exist")
	}

	page, ok := errorPages[status]
	if !ok {
		return fmt.Errorf("no error data for %d error template", status)
	}

	page.Title = strconv.Itoa(status)
	page.Heading = fmt.Sprintf("%s (%d)", page.Heading, status)

	data.Title = page.Heading
	data.HTMLErrorData = &page

	return tmpl.ExecuteTemplate(w, "error.html", data)
}

// HTMLError writes the rich error page to the response.
// Falls back to a plain text error if the template fails.
func (s *service) HTMLError(w http.ResponseWriter, r *http.Request, statusCode int, data *models.TemplateData) {

	// Errors raised before the data middleware
	if data == nil {
		data = s.NewData(w, r)
	}

	var buf bytes.Buffer
	if err := s.ExecuteErrorTemplate(&buf, statusCode, data); err != nil {
		log.Printf("Failed to execute the error template on URI '%s': %v", r.RequestURI, err)
		utils.HttpError(w, statusCode)
		return
	}

	send(w, r, statusCode, "text/html; charset=utf-8", buf.Bytes())
}

// JSONError writes {"error": ..., "code": ...} with the given status
func (s *service) JSONError(w http.ResponseWriter, r *http.Request, statusCode int) {

	body, err := json.Marshal(models.JSONErrorData{
		Error: http.StatusText(statusCode),
		Code:  statusCode,
	})
	if err != nil {
		log.Printf("Failed to encode the JSON error on URI '%s': %v", r.RequestURI, err)
		utils.HttpError(w, statusCode)
		return
	}

	send(w, r, statusCode, "application/json", body)
}
