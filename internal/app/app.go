package app

import (
	"log"
	"net/http"
	"time"

	"github.com/vlatan/block-site/internal/config"
	"github.com/vlatan/block-site/internal/drivers/rdb"
	"github.com/vlatan/block-site/internal/handlers/misc"
	"github.com/vlatan/block-site/internal/handlers/pages"
	"github.com/vlatan/block-site/internal/handlers/posts"
	"github.com/vlatan/block-site/internal/handlers/preview"
	"github.com/vlatan/block-site/internal/handlers/sitemaps"
	"github.com/vlatan/block-site/internal/middlewares"
	"github.com/vlatan/block-site/internal/payload"
	sessions "github.com/vlatan/block-site/internal/preview"
	"github.com/vlatan/block-site/internal/ui"
)

type App struct {
	pages    *pages.Service
	posts    *posts.Service
	preview  *preview.Service
	sitemaps *sitemaps.Service
	misc     *misc.Service
	mw       *middlewares.Service
	cleanup  func() error

	Config  *config.Config
	Content *payload.Client
	Redis   *rdb.Service
	server  *http.Server
}

// New wires the site together.
// Redis is created only when caching is enabled.
func New(cfg *config.Config) *App {

	var redis *rdb.Service
	if cfg.CacheEnabled {
		var err error
		if redis, err = rdb.New(cfg); err != nil {
			log.Fatalf("couldn't create Redis service; %v", err)
		}
	}

	// Content API client
	content := payload.New(cfg, nil, redis)

	// Create user interface service
	ui := ui.New(cfg, content)

	// Draft mode cookies
	previewSessions := sessions.New(cfg)

	// Keep the interface nil when there is no Redis
	var redisHealth misc.HealthChecker
	if redis != nil {
		redisHealth = redis
	}

	return &App{
		pages:    pages.New(content, ui, cfg),
		posts:    posts.New(content, ui, cfg),
		preview:  preview.New(previewSessions, cfg),
		sitemaps: sitemaps.New(content, ui, cfg),
		misc:     misc.New(cfg, content, redisHealth, ui),
		mw:       middlewares.New(ui, cfg, previewSessions),
		cleanup:  redis.Close,

		Config:  cfg,
		Content: content,
		Redis:   redis,
		server: &http.Server{
			Addr:         cfg.Addr(),
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}
}
