package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/saulluiz/api-recipe-generator/internal/utils"
)

// MaxUploadSize caps uploads at 5 MiB.
const MaxUploadSize = 5 << 20

// AllowImage is the content-type allow-list for uploaded images.
var AllowImage = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

var (
	ErrStorageNotConfigured  = errors.New("s3 storage not configured")
	ErrFileTooLarge          = errors.New("file exceeds maximum upload size")
	ErrContentTypeNotAllowed = errors.New("content type not allowed")
)

// ObjectKey is the internal storage key of an uploaded object. It is distinct
// from the public URL and must never be exposed directly.
type ObjectKey string

type (
	AwsS3 interface {
		UploadFile(ctx context.Context, nameHint string, file *multipart.FileHeader, folder string, allowedTypes ...string) (ObjectKey, error)
		DeleteFile(ctx context.Context, key ObjectKey) error
		PublicURL(key ObjectKey) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() (AwsS3, error) {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")
	if bucket == "" || region == "" {
		return nil, ErrStorageNotConfigured
	}

	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

func (a *awsS3) UploadFile(ctx context.Context, nameHint string, file *multipart.FileHeader, folder string, allowedTypes ...string) (ObjectKey, error) {
	if file.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	contentType := detectContentType(file)
	if len(allowedTypes) > 0 && !contains(allowedTypes, contentType) {
		return "", ErrContentTypeNotAllowed
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := ObjectKey(fmt.Sprintf("%s/%s-%s%s", folder, nameHint, uuid.New().String(), ext))

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(string(key)),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to s3: %w", err)
	}

	return key, nil
}

func (a *awsS3) DeleteFile(ctx context.Context, key ObjectKey) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(string(key)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from s3: %w", err)
	}
	return nil
}

func (a *awsS3) PublicURL(key ObjectKey) string {
	if key == "" {
		return ""
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, key)
}

func detectContentType(file *multipart.FileHeader) string {
	contentType := file.Header.Get("Content-Type")
	if contentType != "" {
		return contentType
	}

	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
