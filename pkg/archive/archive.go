package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/QuangTung97/donation-ledger/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

//go:generate moq -out archive_mocks.go . Archive PutObjectAPI

// Archive stores an immutable copy of every verified gateway delivery
type Archive interface {
	Store(ctx context.Context, eventID string, receivedAt time.Time, payload []byte) error
}

// PutObjectAPI is the subset of the s3 client used
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archive ...
type S3Archive struct {
	client PutObjectAPI
	bucket string
	prefix string
}

// NewS3Archive ...
func NewS3Archive(client PutObjectAPI, bucket string, prefix string) *S3Archive {
	return &S3Archive{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// New returns a Nop archive when no bucket is configured
func New(ctx context.Context, conf config.ArchiveConfig) (Archive, error) {
	if conf.Bucket == "" {
		return Nop{}, nil
	}

	var opts []func(*awsconfig.LoadOptions) error
	if conf.Region != "" {
		opts = append(opts, awsconfig.WithRegion(conf.Region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewS3Archive(s3.NewFromConfig(cfg), conf.Bucket, conf.Prefix), nil
}

// ObjectKey is <prefix>/<yyyy>/<mm>/<dd>/<event id>.json
func ObjectKey(prefix string, eventID string, receivedAt time.Time) string {
	return path.Join(prefix, receivedAt.UTC().Format("2006/01/02"), eventID+".json")
}

// Store ...
func (a *S3Archive) Store(ctx context.Context, eventID string, receivedAt time.Time, payload []byte) error {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(ObjectKey(a.prefix, eventID, receivedAt)),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put archive object: %w", err)
	}
	return nil
}

// Nop discards payloads
type Nop struct{}

// Store ...
func (Nop) Store(context.Context, string, time.Time, []byte) error {
	return nil
}
