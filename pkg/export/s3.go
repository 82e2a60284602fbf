package export

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the slice of the S3 client Publish needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads exported pages to an S3 bucket.
type S3Publisher struct {
	client ObjectPutter
	bucket string
	prefix string
	logger *slog.Logger
}

// NewS3Publisher builds a publisher for a bucket. Keys are joined
// under prefix, which may be empty.
func NewS3Publisher(client ObjectPutter, bucket, prefix string, logger *slog.Logger) *S3Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &S3Publisher{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		logger: logger.With("component", "export"),
	}
}

// Publish uploads one HTML page under the given key.
func (p *S3Publisher) Publish(ctx context.Context, key, html string) error {
	fullKey := key
	if p.prefix != "" {
		fullKey = path.Join(p.prefix, key)
	}

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(fullKey),
		Body:        strings.NewReader(html),
		ContentType: aws.String("text/html; charset=utf-8"),
		Metadata: map[string]string{
			"generated-at": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("export: put s3://%s/%s: %w", p.bucket, fullKey, err)
	}

	p.logger.Info("page published", "bucket", p.bucket, "key", fullKey, "bytes", len(html))
	return nil
}
