// Package storage persists uploaded attachments and hands back durable
// reference URLs. Two interchangeable backends exist: local disk served
// under a static path prefix, and S3-compatible object storage.
package storage

import (
	"context"
	"io"
)

// Storage writes uploaded binary content and returns a reference URL the
// client can fetch it from later.
type Storage interface {
	Store(ctx context.Context, r io.Reader, filenameHint, contentType string) (string, error)
}
