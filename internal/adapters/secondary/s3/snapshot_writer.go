package s3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"ml-platform/internal/adapters/secondary/snapshot"
	"ml-platform/internal/config"
	"ml-platform/internal/core/domain"
	ports "ml-platform/internal/core/ports/output"
)

// PutObjectAPI is the subset of the S3 client the writer needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type SnapshotWriter struct {
	client PutObjectAPI
	bucket string
	key    string
}

// NewSnapshotWriter builds an S3 (or MinIO) client from cfg and the
// default AWS credential chain.
func NewSnapshotWriter(ctx context.Context, cfg *config.S3Config) (*SnapshotWriter, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewSnapshotWriterWithClient(client, cfg.Bucket, cfg.Key), nil
}

func NewSnapshotWriterWithClient(client PutObjectAPI, bucket, key string) *SnapshotWriter {
	if key == "" {
		key = "snapshots/database.json"
	}
	return &SnapshotWriter{client: client, bucket: bucket, key: key}
}

func (w *SnapshotWriter) Name() string { return "s3" }

func (w *SnapshotWriter) Write(ctx context.Context, snap *domain.Snapshot) error {
	data, err := snapshot.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = w.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(w.bucket),
		Key:         aws.String(w.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put snapshot s3://%s/%s: %w", w.bucket, w.key, err)
	}
	return nil
}

var _ ports.SnapshotWriter = (*SnapshotWriter)(nil)
