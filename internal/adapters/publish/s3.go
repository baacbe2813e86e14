// Package publish uploads the rendered dashboard to the static site
// host.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/okian/dugout/pkg/metrics"
)

// Config holds configuration for the S3 publish target.
type Config struct {
	Bucket    string
	Region    string
	Prefix    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// S3Publisher uploads site files to S3 (or an S3-compatible store).
type S3Publisher struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Publisher creates an S3-backed publisher.
func NewS3Publisher(ctx context.Context, cfg Config) (*S3Publisher, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: bucket must not be empty", ErrBadTarget)
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	return &S3Publisher{
		client: s3.NewFromConfig(awsCfg, s3Opts...),
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
	}, nil
}

// SiteDir walks a rendered site directory and uploads every file,
// preserving relative paths under the configured prefix. Returns the
// number of files uploaded.
func (p *S3Publisher) SiteDir(ctx context.Context, dir string) (int, error) {
	uploaded := 0
	err := filepath.WalkDir(dir, func(fp string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, fp)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(fp)
		if err != nil {
			return fmt.Errorf("read %s: %w", fp, err)
		}
		if err := p.put(ctx, filepath.ToSlash(rel), data); err != nil {
			return err
		}
		uploaded++
		metrics.RecordPagePublished()
		return nil
	})
	if err != nil {
		return uploaded, fmt.Errorf("%w: %w", ErrUpload, err)
	}
	return uploaded, nil
}

func (p *S3Publisher) put(ctx context.Context, rel string, data []byte) error {
	key := rel
	if p.prefix != "" {
		key = p.prefix + "/" + rel
	}

	contentType := mime.TypeByExtension(path.Ext(rel))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("s3 put %s: %w", key, err)
	}
	return nil
}
