package ui

import (
	"net/http"

	"github.com/vlatan/block-site/internal/models"
	"github.com/vlatan/block-site/internal/utils"
)

// Creates new default data struct to be passed to the templates.
// It's envoked in a middleware and passed donwstream in the request context.
func (s *service) NewData(w http.ResponseWriter, r *http.Request) *models.TemplateData {
	return &models.TemplateData{
		StaticFiles:  s.StaticFiles(),
		Config:       s.config,
		Description:  s.config.SiteDescription,
		CurrentURI:   r.RequestURI,
		BaseURL:      s.config.SiteURL,
		CanonicalURL: utils.AbsoluteURL(s.config.SiteURL, r.URL.Path),
		Preview:      models.IsPreview(r),
		Navigation:   s.content.GetNavigation(r.Context()),
	}
}
