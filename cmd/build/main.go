package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
	"github.com/vlatan/block-site/internal/app"
	"github.com/vlatan/block-site/internal/config"
	"github.com/vlatan/block-site/internal/export"
	"github.com/vlatan/block-site/internal/integrations/r2"
)

// How long an upload may hold the lock
const lockExpiry = 30 * time.Minute

func run(ctx context.Context, cmd *cli.Command) error {

	cfg, err := config.Parse()
	if err != nil {
		return err
	}

	a := app.New(cfg)
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("Error during cleanup: %v", err)
		}
	}()

	out := cmd.String("out")
	exporter := export.New(a.Handler(), a.Content, cfg)

	start := time.Now()
	if _, err = exporter.Build(ctx, out); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	log.Printf("Build finished in %s", time.Since(start).Round(time.Millisecond))

	if !cmd.Bool("upload") {
		return nil
	}

	if cfg.R2SiteBucketName == "" {
		return errors.New("R2_SITE_BUCKET_NAME is required to upload")
	}

	// Only lock when there is a shared Redis to lock on
	var lock export.Lock
	if a.Redis != nil {
		lock = a.Redis.NewRedisLock("export:upload", uuid.NewString(), lockExpiry)
	}

	if _, err = exporter.Upload(ctx, out, r2.New(ctx, cfg), lock); err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "block-site-build",
		Usage:  "Render the site to static files and optionally upload them to R2",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Output directory",
				Value:   "public",
				Sources: cli.EnvVars("EXPORT_OUT"),
			},
			&cli.BoolFlag{
				Name:  "upload",
				Usage: "Upload the output to the R2 site bucket",
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Printf("build error: %v", err)
		stop()
		os.Exit(1)
	}
}
