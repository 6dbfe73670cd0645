package client

import (
	"context"
	"fmt"
	"io"
	"strings"

	appConfig "coboard-api/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Storage implements ObjectStorage on an S3 bucket. S3 has no rename, so
// Promote copies the temp object to its final key and deletes the original.
type S3Storage struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Storage creates a new S3-backed storage. A non-empty Endpoint points
// the client at a local MinIO instead of AWS.
func NewS3Storage(cfg *appConfig.S3Config) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("S3 region is required")
	}

	var awsCfg aws.Config
	var err error

	if cfg.Endpoint != "" {
		// MinIO requires explicit credentials
		if cfg.AccessKey == "" || cfg.SecretKey == "" {
			return nil, fmt.Errorf("access key and secret key are required for MinIO endpoint")
		}

		awsCfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(cfg.Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)),
			config.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					return aws.Endpoint{
						URL:               cfg.Endpoint,
						HostnameImmutable: true,
						SigningRegion:     cfg.Region,
					}, nil
				},
			)),
		)
	} else {
		// AWS SDK default credential chain (IAM role on EC2, ~/.aws/credentials locally)
		awsCfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(cfg.Region),
		)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.UsePathStyle = true // Required for MinIO
		}
	})

	return &S3Storage{
		client: s3Client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
	}, nil
}

// key joins the configured prefix with an object name
func (s *S3Storage) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "/" + name
}

// SaveTemp uploads the content under a unique temp key
func (s *S3Storage) SaveTemp(ctx context.Context, name string, content io.Reader) (string, error) {
	tempKey := s.key(fmt.Sprintf("tmp/%s_%s", uuid.New().String(), name))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(tempKey),
		Body:   content,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload temp object: %w", err)
	}

	return tempKey, nil
}

// Promote copies the temp object to its final key and removes the temp one
func (s *S3Storage) Promote(ctx context.Context, tempPath, finalName string) (string, error) {
	finalKey := s.key(finalName)

	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.bucket),
		CopySource: aws.String(s.bucket + "/" + tempPath),
		Key:        aws.String(finalKey),
	})
	if err != nil {
		return "", fmt.Errorf("failed to copy object to final key: %w", err)
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(tempPath),
	})
	if err != nil {
		return "", fmt.Errorf("failed to delete temp object: %w", err)
	}

	return finalKey, nil
}

// Open streams a stored object and reports its size
func (s *S3Storage) Open(ctx context.Context, path string) (io.ReadCloser, int64, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get object: %w", err)
	}

	size := int64(0)
	if out.ContentLength != nil {
		size = *out.ContentLength
	}

	return out.Body, size, nil
}

// Ensure S3Storage implements ObjectStorage
var _ ObjectStorage = (*S3Storage)(nil)
