package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// S3Client defines the interface for S3 operations we need
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads finished reports to a bucket
type S3Publisher struct {
	client     S3Client
	bucketName string
	prefix     string
}

func NewS3Publisher(client S3Client, bucketName, prefix string) *S3Publisher {
	return &S3Publisher{
		client:     client,
		bucketName: bucketName,
		prefix:     prefix,
	}
}

// ObjectKey returns the key a report is stored under
func (p *S3Publisher) ObjectKey(r *Report) string {
	return fmt.Sprintf("%s%s/%s.json", p.prefix, r.GeneratedAt.Format("2006-01-02"), r.ID)
}

// Publish uploads r as JSON and returns the object key
func (p *S3Publisher) Publish(ctx context.Context, r *Report) (string, error) {
	if p.bucketName == "" {
		return "", fmt.Errorf("empty bucket name")
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, r); err != nil {
		return "", err
	}

	key := p.ObjectKey(r)
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("saving to S3: %w", err)
	}

	log.Debug().
		Str("bucket", p.bucketName).
		Str("key", key).
		Int("flight_count", len(r.Flights)).
		Msg("Uploaded report to S3")
	return key, nil
}
