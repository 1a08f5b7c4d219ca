package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"gigboard/internal/config"
)

var ErrInvalidPath = errors.New("invalid object path")

// Storage keeps uploaded files grouped in named buckets. Saving to an
// existing bucket/path replaces the object.
type Storage interface {
	Save(ctx context.Context, bucket, objectPath string, r io.Reader, contentType string) error
	Delete(ctx context.Context, bucket, objectPath string) error
	// PublicURL returns a stable URL for bucket/objectPath. It does not check existence.
	PublicURL(bucket, objectPath string) string
}

func New(cfg config.StorageConfig) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Type)) {
	case "", "local":
		return NewLocalStorage(cfg)
	case "s3", "r2":
		return NewObjectStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// objectKey joins bucket and objectPath into a clean slash-separated key and
// rejects anything that would escape the bucket.
func objectKey(bucket, objectPath string) (string, error) {
	bucket = strings.Trim(strings.TrimSpace(bucket), "/")
	objectPath = strings.TrimLeft(strings.TrimSpace(objectPath), "/")
	if bucket == "" || objectPath == "" || strings.Contains(bucket, "/") {
		return "", ErrInvalidPath
	}

	clean := path.Clean(objectPath)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", ErrInvalidPath
	}
	return bucket + "/" + clean, nil
}

// joinURL appends key to base with every path segment escaped, so names
// holding '#', '?' or spaces still resolve to the stored object.
func joinURL(base, key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(segments, "/")
}
