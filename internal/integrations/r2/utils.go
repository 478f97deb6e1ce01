package r2

import (
	"crypto/md5" // #nosec G501
	"encoding/hex"
	"fmt"
	"os"
)

// readExported reads a file of the export directory.
// Names escaping the directory are rejected by os.Root.
func readExported(dir, name string) ([]byte, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the export dir %s: %w", dir, err)
	}
	defer root.Close()

	return root.ReadFile(name)
}

// etag is the ETag R2 reports for a single part upload
func etag(content []byte) string {
	sum := md5.Sum(content) // #nosec G401
	return hex.EncodeToString(sum[:])
}
