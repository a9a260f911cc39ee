package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/dapurkita/backoffice/internal/config"
)

// S3Store talks to an S3-compatible object store.
// Works with AWS S3, MinIO, DigitalOcean Spaces, Cloudflare R2.
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Store(cfg *config.Config) (*S3Store, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("storage/s3: S3_BUCKET is not configured")
	}

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.S3Region),
	}

	// Static credentials (required for MinIO / R2 / Spaces)
	if cfg.S3Key != "" && cfg.S3Secret != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3Key, cfg.S3Secret, ""),
		))
	}

	awsConfig, err := awscfg.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("storage/s3: load config: %w", err)
	}

	clientOpts := []func(*s3.Options){}
	if cfg.S3Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true // required for MinIO
		})
	}

	baseURL := strings.TrimRight(cfg.S3PublicURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &S3Store{
		client:  s3.NewFromConfig(awsConfig, clientOpts...),
		bucket:  cfg.S3Bucket,
		baseURL: baseURL,
	}, nil
}

func (s *S3Store) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err == nil {
		return nil
	}

	var notFound *types.NotFound
	if !errors.As(err, &notFound) {
		return fmt.Errorf("storage/s3: head bucket %s: %w", s.bucket, err)
	}

	if _, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(s.bucket),
	}); err != nil {
		return fmt.Errorf("storage/s3: create bucket %s: %w", s.bucket, err)
	}

	// A fresh bucket is private; the public URLs handed out by Upload
	// only work once anonymous reads are allowed.
	if _, err := s.client.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: aws.String(s.bucket),
		Policy: aws.String(publicReadPolicy(s.bucket)),
	}); err != nil {
		return fmt.Errorf("storage/s3: set public-read policy on %s: %w", s.bucket, err)
	}
	return nil
}

// publicReadPolicy grants anonymous GetObject on every key in the bucket.
func publicReadPolicy(bucket string) string {
	return fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":"*","Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, bucket)
}

func (s *S3Store) List(ctx context.Context, prefix string) ([]string, error) {
	pfx := strings.TrimLeft(prefix, "/")
	if pfx != "" && !strings.HasSuffix(pfx, "/") {
		pfx += "/"
	}

	var keys []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(pfx),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("storage/s3: list %s: %w", prefix, err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, *obj.Key)
		}
	}
	return keys, nil
}

func (s *S3Store) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
	})
	if err != nil {
		return "", fmt.Errorf("storage/s3: put %s: %w", key, err)
	}
	return s.PublicURL(key), nil
}

func (s *S3Store) Remove(ctx context.Context, keys []string) ([]string, []error) {
	if len(keys) == 0 {
		return nil, nil
	}

	objs := make([]types.ObjectIdentifier, len(keys))
	for i, k := range keys {
		objs[i] = types.ObjectIdentifier{Key: aws.String(k)}
	}

	out, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &types.Delete{Objects: objs},
	})
	if err != nil {
		errs := make([]error, len(keys))
		for i, k := range keys {
			errs[i] = fmt.Errorf("storage/s3: delete %s: %w", k, err)
		}
		return nil, errs
	}

	var deleted []string
	for _, d := range out.Deleted {
		if d.Key != nil {
			deleted = append(deleted, *d.Key)
		}
	}
	var errs []error
	for _, e := range out.Errors {
		key := ""
		if e.Key != nil {
			key = *e.Key
		}
		msg := ""
		if e.Message != nil {
			msg = *e.Message
		}
		errs = append(errs, fmt.Errorf("storage/s3: delete %s: %s", key, msg))
	}
	return deleted, errs
}

func (s *S3Store) PublicURL(key string) string {
	return s.baseURL + "/" + strings.TrimLeft(key, "/")
}
