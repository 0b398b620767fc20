package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Options carries everything needed to reach the bucket. Credentials may
// be empty, in which case the SDK's default provider chain is used.
type S3Options struct {
	Bucket        string
	Region        string
	Endpoint      string // optional, for S3-compatible stores
	AccessKey     string
	SecretKey     string
	PublicBaseURL string // optional override for the returned object URL
}

// S3 stores attachments in an S3 bucket and returns public object URLs.
type S3 struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3(ctx context.Context, opts S3Options) (*S3, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts,
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := opts.PublicBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", opts.Bucket, opts.Region)
	}
	return &S3{client: client, bucket: opts.Bucket, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Store uploads the content under a uuid-prefixed key and returns its
// public URL. The key keeps the original extension so content is servable
// with a sensible type.
func (s *S3) Store(ctx context.Context, r io.Reader, filenameHint, contentType string) (string, error) {
	key := fmt.Sprintf("attachments/%s%s", uuid.NewString(), filepath.Ext(filenameHint))
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return s.baseURL + "/" + key, nil
}
