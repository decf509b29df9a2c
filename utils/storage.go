package utils

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/princinho/ecomapi/config"
)

// R2Client wraps the S3 client plus the bucket and public domain it serves.
// R2 speaks the S3 API, so the AWS SDK is used as-is.
type R2Client struct {
	S3           *s3.Client
	Bucket       string
	PublicDomain string
}

func NewR2Client(ctx context.Context, cfg config.Config) (*R2Client, error) {
	if cfg.R2Bucket == "" || cfg.R2AccessKeyID == "" || cfg.R2SecretKey == "" || cfg.R2Endpoint == "" {
		return nil, fmt.Errorf("missing R2 env vars (R2_BUCKET, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_ENDPOINT)")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.R2AccessKeyID, cfg.R2SecretKey, ""),
		),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("r2 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.R2Endpoint)
		o.UsePathStyle = true // required for R2
	})

	return &R2Client{S3: client, Bucket: cfg.R2Bucket, PublicDomain: cfg.R2PublicDomain}, nil
}

// UploadImagesToR2 stores each file under uploads/<prefix>/ and returns the
// public URLs in upload order.
func UploadImagesToR2(
	ctx context.Context,
	r2 *R2Client,
	prefix string,
	files []*multipart.FileHeader,
) ([]string, error) {

	if len(files) < 1 || len(files) > 4 {
		return nil, fmt.Errorf("images must be 1 to 4")
	}

	urls := make([]string, 0, len(files))

	for _, fh := range files {
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if ext == "" {
			ext = ".bin"
		}
		objectName := fmt.Sprintf("uploads/%s/%d%s", prefix, time.Now().UnixNano(), ext)

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = mime.TypeByExtension(ext)
		}
		if ct == "" {
			ct = "application/octet-stream"
		}

		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}

		_, err = r2.S3.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(r2.Bucket),
			Key:         aws.String(objectName),
			Body:        f,
			ContentType: aws.String(ct),
		})
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", fh.Filename, err)
		}

		urls = append(urls, r2.publicURL(objectName))
	}

	return urls, nil
}

// publicURL builds the client-facing URL for a stored object. Set
// R2_PUBLIC_DOMAIN to a custom domain or the bucket's r2.dev URL.
func (r *R2Client) publicURL(objectName string) string {
	domain := strings.TrimRight(r.PublicDomain, "/")
	return fmt.Sprintf("%s/%s/%s", domain, r.Bucket, objectName)
}
