package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/vlatan/block-site/internal/metrics"
	"github.com/vlatan/block-site/internal/utils"
	"golang.org/x/sync/errgroup"
)

// Uploader puts a local file into a bucket
type Uploader interface {
	UploadFile(ctx context.Context, bucket, rootPath, key, filePath string) (bool, error)
}

// Lock keeps two uploads from interleaving
type Lock interface {
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
}

// ErrLocked means another upload holds the lock
var ErrLocked = errors.New("another upload is in progress")

var uploadRetry = utils.RetryConfig{
	MaxRetries: 3,
	MaxJitter:  250 * time.Millisecond,
	Delay:      500 * time.Millisecond,
}

// Upload pushes the out directory to the bucket.
// The lock is optional.
func (s *Service) Upload(ctx context.Context, out string, up Uploader, lock Lock) (*Result, error) {

	if lock != nil {
		ok, err := lock.TryLock(ctx)
		if err != nil {
			return nil, fmt.Errorf("couldn't take the upload lock: %w", err)
		}
		if !ok {
			return nil, ErrLocked
		}
		defer func() {
			if err := lock.Unlock(context.Background()); err != nil {
				log.Printf("Failed to release the upload lock: %v", err)
			}
		}()
	}

	var files []string
	err := fs.WalkDir(os.DirFS(out), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't list %s: %w", out, err)
	}

	var uploaded, skipped atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.config.ExportWorkers, 1))

	for _, file := range files {
		g.Go(func() error {
			rc := uploadRetry
			sent, err := utils.Retry(gctx, &rc, func() (bool, error) {
				return up.UploadFile(gctx, s.config.R2SiteBucketName, out, file, file)
			})

			switch {
			case err != nil:
				metrics.ExportFilesTotal.WithLabelValues("upload", metrics.Result(err)).Inc()
				return fmt.Errorf("couldn't upload %s: %w", file, err)
			case sent:
				uploaded.Add(1)
				metrics.ExportFilesTotal.WithLabelValues("upload", metrics.Result(nil)).Inc()
			default:
				skipped.Add(1)
				metrics.ExportFilesTotal.WithLabelValues("upload", "skipped").Inc()
			}
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}

	log.Printf(
		"Uploaded %d files to '%s', %d unchanged",
		uploaded.Load(), s.config.R2SiteBucketName, skipped.Load(),
	)

	return &Result{Uploaded: uploaded.Load(), Skipped: skipped.Load()}, nil
}
