package report

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// NewS3Client creates an S3 client. A non-empty endpoint targets an
// S3-compatible store such as MinIO, using path-style addressing and
// static credentials from S3_ACCESS_KEY_ID/S3_SECRET_ACCESS_KEY when set.
func NewS3Client(ctx context.Context, endpoint string) (*s3.Client, error) {
	if endpoint != "" {
		log.Debug().Str("endpoint", endpoint).Msg("Using custom S3 endpoint")
		region := os.Getenv("AWS_REGION")
		if region == "" {
			region = "us-east-1"
		}
		customOptions := []func(*config.LoadOptions) error{
			config.WithRegion(region),
			config.WithClientLogMode(aws.LogRetries),
		}
		if key, secret := os.Getenv("S3_ACCESS_KEY_ID"), os.Getenv("S3_SECRET_ACCESS_KEY"); key != "" && secret != "" {
			customOptions = append(customOptions, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(key, secret, ""),
			))
		}

		cfg, err := config.LoadDefaultConfig(ctx, customOptions...)
		if err != nil {
			return nil, err
		}

		return s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}), nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg), nil
}
