package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// URLPrefix is the static-serving path uploads are exposed under.
const URLPrefix = "/uploads"

// Local stores attachments on the local filesystem. References are
// relative paths under URLPrefix, served by the router as static files.
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{dir: dir}, nil
}

// Store writes the content under a timestamp-prefixed name so repeated
// uploads of the same file never collide.
func (l *Local) Store(_ context.Context, r io.Reader, filenameHint, _ string) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(filenameHint))
	f, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return URLPrefix + "/" + name, nil
}
