package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "portfolio/internal/config"
)

// S3Store implements ObjectStore for S3-compatible storage.
// Works with AWS S3, MinIO, DigitalOcean Spaces, Cloudflare R2, etc.
type S3Store struct {
	client   *s3.Client
	region   string
	endpoint string          // Optional: for custom endpoints (MinIO, DO Spaces, etc.)
	buckets  map[string]bool // managed buckets, the only ones KeyForURL resolves
}

// S3Config holds configuration for S3 storage
type S3Config struct {
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string   // Optional: for S3-compatible services
	Buckets   []string // Buckets to manage, created on startup if missing
}

// New creates an S3-compatible store from app config, managing the
// profile, certificates and project-files buckets.
func New(c *cfg.Config) (ObjectStore, error) {
	slog.Info("initializing S3 storage",
		"region", c.S3Region,
		"endpoint", c.S3Endpoint,
	)
	return NewS3Store(S3Config{
		Region:    c.S3Region,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
		Endpoint:  c.S3Endpoint,
		Buckets:   []string{c.BucketProfile, c.BucketCertificates, c.BucketProjectFiles},
	})
}

// NewS3Store creates a new S3 store instance
func NewS3Store(cfg S3Config) (*S3Store, error) {
	ctx := context.Background()

	var opts []func(*config.LoadOptions) error
	opts = append(opts, config.WithRegion(cfg.Region))

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	if cfg.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // Required for MinIO and some S3-compatible services
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	store := &S3Store{
		client:   client,
		region:   cfg.Region,
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		buckets:  make(map[string]bool, len(cfg.Buckets)),
	}

	for _, bucket := range cfg.Buckets {
		store.buckets[bucket] = true
		err = store.ensureBucket(ctx, bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
		}
	}

	return store, nil
}

// ensureBucket checks if bucket exists, creates it if not
func (s *S3Store) ensureBucket(ctx context.Context, bucket string) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err == nil {
		return nil // Bucket exists
	}

	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return fmt.Errorf("bucket %q does not exist and could not be created: %w", bucket, err)
	}

	slog.Info("created S3 bucket", "bucket", bucket)
	return nil
}

// Put stores an object and returns its durable reference.
func (s *S3Store) Put(ctx context.Context, bucket, key string, body io.Reader, contentType string) (Object, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return Object{}, fmt.Errorf("%w: failed to upload %s/%s: %v", ErrStoreUnavailable, bucket, key, err)
	}

	return Object{
		Bucket: bucket,
		Key:    key,
		URL:    s.PublicURL(bucket, key),
	}, nil
}

// Delete removes an object. A missing object is treated as already deleted.
func (s *S3Store) Delete(ctx context.Context, bucket, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: failed to delete %s/%s: %v", ErrStoreUnavailable, bucket, key, err)
	}

	return nil
}

// List returns a single page of objects under prefix, newest page first is
// not guaranteed, S3 lists in lexical key order.
func (s *S3Store) List(ctx context.Context, bucket, prefix string, limit int) ([]ObjectInfo, error) {
	out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list %s: %v", ErrStoreUnavailable, bucket, err)
	}

	infos := make([]ObjectInfo, 0, len(out.Contents))
	for _, obj := range out.Contents {
		info := ObjectInfo{
			Key:  aws.ToString(obj.Key),
			Size: aws.ToInt64(obj.Size),
		}
		if obj.LastModified != nil {
			info.CreatedAt = *obj.LastModified
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// PublicURL derives the public URL for an object. Pure string derivation,
// no network call.
func (s *S3Store) PublicURL(bucket, key string) string {
	escaped := url.PathEscape(key)
	if s.endpoint != "" {
		// Custom endpoint (MinIO, DO Spaces, etc.), path-style
		return fmt.Sprintf("%s/%s/%s", s.endpoint, bucket, escaped)
	}
	// Standard AWS S3 URL
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, s.region, escaped)
}

// KeyForURL resolves a public URL back to (bucket, key). It only accepts
// URLs matching this store's URL shape for a managed bucket, anything else
// (manually entered external links in particular) reports ok=false.
func (s *S3Store) KeyForURL(rawURL string) (bucket, key string, ok bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", "", false
	}

	path := strings.TrimPrefix(u.Path, "/")

	if s.endpoint != "" {
		base, err := url.Parse(s.endpoint)
		if err != nil || u.Host != base.Host {
			return "", "", false
		}
		// Path-style: /{bucket}/{key}
		bucket, key, found := strings.Cut(path, "/")
		if !found || !s.buckets[bucket] || key == "" {
			return "", "", false
		}
		return bucket, unescapeKey(key), true
	}

	// Virtual-hosted style: {bucket}.s3.{region}.amazonaws.com/{key}
	suffix := fmt.Sprintf(".s3.%s.amazonaws.com", s.region)
	bucket, found := strings.CutSuffix(u.Host, suffix)
	if !found || !s.buckets[bucket] || path == "" {
		return "", "", false
	}
	return bucket, unescapeKey(path), true
}

func unescapeKey(key string) string {
	unescaped, err := url.PathUnescape(key)
	if err != nil {
		return key
	}
	return unescaped
}
