package ui

import (
	"bytes"
	"compress/gzip"
	"crypto/md5" // #nosec G501
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify"
	"github.com/vlatan/block-site/internal/models"
	"github.com/vlatan/block-site/web"
)

// Media types of the assets we minify and precompress
var staticMediaTypes = map[string]string{
	".css":         "text/css",
	".js":          "application/javascript",
	".webmanifest": "application/manifest+json",
}

// StaticFiles gets the map containing the static files
func (s *service) StaticFiles() models.StaticFiles {
	return s.staticFiles
}

// Create minified versions of the static files and cache them in memory.
// Keys are the URL paths, i.e. /static/css/style.css
func parseStaticFiles(m *minify.M, dir string) models.StaticFiles {

	sf := make(models.StaticFiles)

	walkDirFunc := func(path string, info fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip directories and already minified files
		if info.IsDir() || strings.Contains(info.Name(), ".min.") {
			return nil
		}

		fi, err := staticFile(m, path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		sf["/"+path] = fi
		return nil
	}

	if err := fs.WalkDir(web.Files, dir, walkDirFunc); err != nil {
		log.Println(err)
	}

	return sf
}

// staticFile reads one embedded file.
// Text assets are kept minified along with a gzipped copy.
func staticFile(m *minify.M, path string) (*models.FileInfo, error) {

	b, err := fs.ReadFile(web.Files, path)
	if err != nil {
		return nil, err
	}

	// Embedded files have zero mod time,
	// the etag is what busts the caches
	fi := &models.FileInfo{
		MediaType: staticMediaTypes[filepath.Ext(path)],
		Etag:      fmt.Sprintf("%x", md5.Sum(b)), // #nosec G401
	}

	// Others are served straight from the embedded FS
	if fi.MediaType == "" {
		return fi, nil
	}

	mb, err := m.Bytes(fi.MediaType, b)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err = gz.Write(mb); err != nil {
		return nil, err
	}

	// Close explicitly to flush all the bytes
	if err = gz.Close(); err != nil {
		return nil, err
	}

	fi.Bytes = mb
	fi.Compressed = buf.Bytes()
	return fi, nil
}
