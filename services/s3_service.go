package services

import (
	"context"
	"errors"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const presignExpiry = 5 * time.Minute

// S3Service presigns avatar uploads and reads.
type S3Service struct {
	Presigner *s3.PresignClient
	Bucket    string
}

func NewS3Service(client *s3.Client, bucket string) *S3Service {
	return &S3Service{Presigner: s3.NewPresignClient(client), Bucket: bucket}
}

// GenerateUploadURL generates a presigned URL for uploading an avatar of userID
func (s *S3Service) GenerateUploadURL(ctx context.Context, userID, fileName, fileType string) (string, string, error) {
	if s.Bucket == "" {
		return "", "", errors.New("avatar bucket is not configured")
	}
	key := "avatars/" + userID + "/" + time.Now().UTC().Format("20060102150405") + "-" + path.Base(fileName)
	params := &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presignedURL, err := s.Presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", "", err
	}
	return presignedURL.URL, key, nil
}

// GenerateReadURL generates a presigned URL for reading an avatar
func (s *S3Service) GenerateReadURL(ctx context.Context, key string) (string, error) {
	if s.Bucket == "" {
		return "", errors.New("avatar bucket is not configured")
	}
	params := &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}
	presignedURL, err := s.Presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}
	return presignedURL.URL, nil
}
