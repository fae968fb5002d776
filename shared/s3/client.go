package s3

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
)

type S3Client struct {
	svc          *awss3.S3
	bucket       string
	endpoint     string
	region       string
	usePathStyle bool
	aliasHost    string
}

// NewS3Client собирает клиент из окружения (совместим с MinIO и прочими
// S3-совместимыми хранилищами через S3_ENDPOINT + S3_USE_PATH_STYLE).
func NewS3Client() (*S3Client, error) {
	endpoint := os.Getenv("S3_ENDPOINT")
	region := os.Getenv("S3_REGION")
	bucket := os.Getenv("S3_BUCKET")
	access := os.Getenv("S3_ACCESS_KEY_ID")
	secret := os.Getenv("S3_SECRET_ACCESS_KEY")
	usePathStyle := os.Getenv("S3_USE_PATH_STYLE") == "true"
	aliasHost := os.Getenv("S3_ALIAS_HOST")

	if endpoint == "" {
		return nil, fmt.Errorf("S3_ENDPOINT is not set")
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	if region == "" {
		return nil, fmt.Errorf("S3_REGION is not set")
	}
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is not set")
	}
	if access == "" || secret == "" {
		return nil, fmt.Errorf("S3_ACCESS_KEY_ID or S3_SECRET_ACCESS_KEY is not set")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String(region),
		Endpoint:         aws.String(endpoint),
		S3ForcePathStyle: aws.Bool(usePathStyle),
		Credentials:      credentials.NewStaticCredentials(access, secret, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3Client{
		svc:          awss3.New(sess),
		bucket:       bucket,
		endpoint:     endpoint,
		region:       region,
		usePathStyle: usePathStyle,
		aliasHost:    aliasHost,
	}, nil
}

// Upload кладет объект в бакет и возвращает публичный URL
func (c *S3Client) Upload(key, contentType string, data []byte) (string, error) {
	_, err := c.svc.PutObject(&awss3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return c.PublicURL(key), nil
}

// PublicURL строит внешний URL объекта с учетом alias host и path style
func (c *S3Client) PublicURL(key string) string {
	if c.aliasHost != "" {
		host := c.aliasHost
		if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
			host = "https://" + host
		}
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(host, "/"), key)
	}
	base := strings.TrimSuffix(c.endpoint, "/")
	if c.usePathStyle {
		return fmt.Sprintf("%s/%s/%s", base, c.bucket, key)
	}
	schemeIdx := strings.Index(base, "://")
	return fmt.Sprintf("%s://%s.%s/%s", base[:schemeIdx], c.bucket, base[schemeIdx+3:], key)
}
