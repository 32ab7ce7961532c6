package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pageza/fittrack/backend/config"
)

// imageURLExpiry bounds how long the returned photo link stays valid.
const imageURLExpiry = 24 * time.Hour

// S3ImageStore uploads food photos to a private S3 bucket.
type S3ImageStore struct {
	s3Config *config.S3Config
}

var _ ImageStore = (*S3ImageStore)(nil)

// NewS3ImageStore creates a new S3ImageStore instance
func NewS3ImageStore(s3Config *config.S3Config) *S3ImageStore {
	return &S3ImageStore{s3Config: s3Config}
}

// Upload stores data under key and returns a presigned download URL.
func (s *S3ImageStore) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url, err := s.s3Config.GeneratePresignedURL(ctx, key, imageURLExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}

	log.Printf("[ImageStore] Uploaded %s to bucket %s", key, s.s3Config.BucketName)
	return url, nil
}
