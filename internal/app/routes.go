package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vlatan/block-site/internal/utils"
)

// Handler builds the site router wrapped in the middleware chain.
// It is what the HTTP server and the static export both serve.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()

	// Pages
	mux.HandleFunc("GET /{$}", a.pages.HomeHandler)
	mux.HandleFunc("GET /{slug}/{$}", a.pages.SinglePageHandler)

	// Blog
	mux.HandleFunc("GET /blog/{$}", a.posts.BlogHandler)
	mux.HandleFunc("GET /blog/page/{page}/{$}", a.posts.BlogHandler)
	mux.HandleFunc("GET /blog/{slug}/{$}", a.posts.SinglePostHandler)
	mux.HandleFunc("GET /blog/category/{slug}/{$}", a.posts.CategoryPostsHandler)
	mux.HandleFunc("GET /blog/category/{slug}/page/{page}/{$}", a.posts.CategoryPostsHandler)

	// Draft mode for the CMS live preview
	mux.HandleFunc("GET /preview/enable", a.preview.EnableHandler)
	mux.HandleFunc("GET /preview/disable", a.preview.DisableHandler)
	mux.HandleFunc("GET /preview/{slug}", a.pages.PreviewPageHandler)
	mux.HandleFunc("GET /preview/blog/{slug}", a.posts.PreviewPostHandler)

	// Sitemap and robots
	mux.HandleFunc("GET /sitemap.xml", a.mw.PublicCache(a.sitemaps.SitemapHandler))
	mux.HandleFunc("GET /robots.txt", a.mw.PublicCache(a.misc.TextHandler))

	// The rest
	mux.HandleFunc("GET /healthcheck", a.misc.HealthCheckHandler)
	mux.HandleFunc("GET /health/{$}", a.misc.HealthHandler)
	mux.Handle("GET /metrics", promhttp.Handler())
	// Every asset lives one directory down, /static/<dir>/<file>
	mux.HandleFunc("GET /static/{dir}/{file}", a.misc.StaticHandler)

	// Register favicons serving from root
	for _, favicon := range utils.RootFavicons {
		mux.HandleFunc("GET "+favicon, a.misc.StaticHandler)
	}

	// Chain middlewares that apply to all requests.
	// The order is important.
	return a.mw.ApplyToAll(
		a.mw.RecoverPanic,
		a.mw.RequestID,
		a.mw.Logging,
		a.mw.CloseBody,
		a.mw.LoadPreview,
		a.mw.LoadData,
		a.mw.AddHeaders,
		a.mw.Compress,
		a.mw.HandleErrors,
		a.mw.Metrics,
	)(mux)
}
