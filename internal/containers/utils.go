// Package containers spins up the services the integration tests need
package containers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/vlatan/block-site/internal/config"
)

type Container interface {
	Terminate(ctx context.Context)
}

// GetProjectRoot walks up from the calling file to the directory holding go.mod
func GetProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(1)
	if !ok {
		return "", errors.New("failed to get the caller information")
	}

	for dir := filepath.Dir(filename); ; {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("reached root without finding go.mod")
		}
		dir = parent
	}
}

// TestConfig parses the config from the environment,
// supplying a throwaway CMS secret when none is set
func TestConfig() (*config.Config, error) {
	if os.Getenv("PAYLOAD_SECRET") == "" {
		if err := os.Setenv("PAYLOAD_SECRET", "test-secret"); err != nil {
			return nil, err
		}
	}
	return config.Parse()
}
