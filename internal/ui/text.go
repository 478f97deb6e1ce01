package ui

import (
	"fmt"
	"strings"

	"github.com/vlatan/block-site/internal/config"
	"github.com/vlatan/block-site/internal/models"
	"github.com/vlatan/block-site/internal/utils"
)

// A robots.txt group, agents sharing the same rules
type robotsGroup struct {
	comment  string
	agents   []string
	disallow []string
}

// Crawlers kept off the whole site
var blockedCrawlers = []string{
	"PetalBot",
	"BLEXBot",
	"Barkrowler",
	"Zoominfobot",
	"magpie-crawler",
	"dotbot/1.0",
	"Go-http-client",
}

// TextFiles gets the map containing the text files
func (s *service) TextFiles() models.TextFiles {
	return s.textFiles
}

// parseTextFiles builds the text files the site serves from its root
func parseTextFiles(cfg *config.Config) models.TextFiles {
	return models.TextFiles{
		"/robots.txt": &models.FileInfo{
			MediaType: "text/plain; charset=utf-8",
			Bytes:     buildRobotsTxt(cfg),
		},
	}
}

func buildRobotsTxt(cfg *config.Config) []byte {
	groups := []robotsGroup{
		{comment: "Crawlers not welcome here", agents: blockedCrawlers, disallow: []string{"/"}},
		{comment: "Drafts are never indexed", agents: []string{"*"}, disallow: []string{"/preview/"}},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Sitemap: %s\n", utils.AbsoluteURL(cfg.SiteURL, "/sitemap.xml"))

	for _, g := range groups {
		fmt.Fprintf(&b, "\n# %s\n", g.comment)
		for _, agent := range g.agents {
			fmt.Fprintf(&b, "User-agent: %s\n", agent)
		}
		for _, p := range g.disallow {
			fmt.Fprintf(&b, "Disallow: %s\n", p)
		}
	}

	return []byte(b.String())
}
