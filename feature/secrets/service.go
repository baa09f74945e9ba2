package secrets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"server-launcher/core/storage"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const objectSuffix = ".env"

var (
	// ErrNotFound is returned when a bundle does not exist.
	ErrNotFound = errors.New("secret bundle not found")
	// ErrInvalidName is returned for empty names or names containing a slash.
	ErrInvalidName = errors.New("invalid secret bundle name")
)

// Service reads and writes secret bundles.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewService creates a new secrets service.
func NewService(client storage.Client, bucket, prefix string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

func (s *Service) objectName(name string) (string, error) {
	if name == "" || strings.Contains(name, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return s.prefix + name + objectSuffix, nil
}

// Fetch downloads and parses the named bundle.
func (s *Service) Fetch(ctx context.Context, name string) (map[string]string, error) {
	key, err := s.objectName(name)
	if err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.wrapGetError(name, err)
	}
	defer obj.Close()

	bundle, err := godotenv.Parse(obj)
	if err != nil {
		return nil, s.wrapGetError(name, err)
	}

	s.logger.Debug("Fetched secret bundle", zap.String("name", name), zap.Int("keys", len(bundle)))
	return bundle, nil
}

func (s *Service) wrapGetError(name string, err error) error {
	if storage.IsNotFound(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return fmt.Errorf("failed to read secret bundle %s: %w", name, err)
}

// Keys returns the sorted key names of the named bundle.
func (s *Service) Keys(ctx context.Context, name string) ([]string, error) {
	bundle, err := s.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	return sortedKeys(bundle), nil
}

// Push validates data as a dotenv document and stores it under name, creating
// the bucket if needed. The stored document is normalised and sorted by key.
func (s *Service) Push(ctx context.Context, name string, data []byte) (int, error) {
	key, err := s.objectName(name)
	if err != nil {
		return 0, err
	}

	bundle, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("failed to parse secret bundle %s: %w", name, err)
	}
	content, err := godotenv.Marshal(bundle)
	if err != nil {
		return 0, fmt.Errorf("failed to encode secret bundle %s: %w", name, err)
	}
	content += "\n"

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return 0, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		s.logger.Info("Creating secrets bucket", zap.String("bucket", s.bucket))
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return 0, fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, strings.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: "text/plain",
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upload secret bundle %s: %w", name, err)
	}

	s.logger.Info("Pushed secret bundle", zap.String("name", name), zap.Int("keys", len(bundle)))
	return len(bundle), nil
}

// Delete removes the named bundle.
func (s *Service) Delete(ctx context.Context, name string) error {
	key, err := s.objectName(name)
	if err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete secret bundle %s: %w", name, err)
	}
	return nil
}

// List returns the sorted names of all bundles under the prefix.
func (s *Service) List(ctx context.Context) ([]string, error) {
	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: s.prefix, Recursive: true}) {
		if obj.Err != nil {
			if storage.IsNotFound(obj.Err) {
				return []string{}, nil
			}
			return nil, fmt.Errorf("failed to list secret bundles: %w", obj.Err)
		}
		name := strings.TrimPrefix(obj.Key, s.prefix)
		if !strings.HasSuffix(name, objectSuffix) || strings.Contains(name, "/") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, objectSuffix))
	}
	sort.Strings(names)
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func sortedKeys(bundle map[string]string) []string {
	keys := make([]string, 0, len(bundle))
	for k := range bundle {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
