package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mealpicker/backend/config"
)

// SignedUpload is the authorization handed to a client for one direct
// upload: the presigned PUT URL and the public URL the object will have
// once uploaded.
type SignedUpload struct {
	SignedRequest string `json:"signed_request"`
	ImgURL        string `json:"img_url"`
	Key           string `json:"key"`
}

// UploadService brokers direct client access to the image bucket. It signs
// time-boxed PUT/DELETE URLs for single objects and never touches file
// bytes itself.
type UploadService struct {
	s3Config *config.S3Config
	presign  *s3.PresignClient
	ttl      time.Duration
	logger   zerolog.Logger
}

// NewUploadService creates a new UploadService instance
func NewUploadService(s3Config *config.S3Config, ttl time.Duration, logger zerolog.Logger) *UploadService {
	return &UploadService{
		s3Config: s3Config,
		presign:  s3.NewPresignClient(s3Config.Client),
		ttl:      ttl,
		logger:   logger.With().Str("service", "upload").Logger(),
	}
}

// SignUpload presigns a PUT for exactly the named object. When no file name
// is supplied a unique one is generated. The returned authorization expires
// after the configured window.
func (s *UploadService) SignUpload(ctx context.Context, fileName, contentType string) (*SignedUpload, error) {
	if fileName == "" {
		fileName = uuid.New().String()
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(fileName),
		ACL:    types.ObjectCannedACLPublicRead,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	req, err := s.presign.PresignPutObject(ctx, input, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload for %q: %w", fileName, err)
	}

	s.logger.Info().Str("key", fileName).Dur("ttl", s.ttl).Msg("upload signed")
	return &SignedUpload{
		SignedRequest: req.URL,
		ImgURL:        PublicObjectURL(s.s3Config.BucketName, fileName),
		Key:           fileName,
	}, nil
}

// SignDelete presigns a DELETE for exactly the named object.
func (s *UploadService) SignDelete(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignDeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign delete for %q: %w", key, err)
	}
	return req.URL, nil
}

// DeleteImage removes the object a public URL points at. URLs outside the
// two recognized bucket hostnames are silently ignored without any network
// call. Deletion is not coordinated with dish writes; a dish referencing a
// deleted object keeps its stale img_url until edited.
func (s *UploadService) DeleteImage(ctx context.Context, imgURL string) error {
	key, ok := ObjectKeyFromURL(s.s3Config.BucketName, s.s3Config.Region, imgURL)
	if !ok {
		s.logger.Debug().Str("url", imgURL).Msg("image url outside bucket domains, skipping delete")
		return nil
	}

	_, err := s.s3Config.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %q from S3: %w", key, err)
	}

	s.logger.Info().Str("key", key).Msg("image deleted")
	return nil
}

// PublicObjectURL returns the public URL an uploaded object is served under.
func PublicObjectURL(bucket, key string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, key)
}

// ObjectKeyFromURL recovers the object key from a public URL. The bucket has
// historically been exposed under two hostnames, with and without the region
// segment, so both are recognized.
func ObjectKeyFromURL(bucket, region, imgURL string) (string, bool) {
	prefixes := []string{
		fmt.Sprintf("https://%s.s3.amazonaws.com/", bucket),
		fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", bucket, region),
	}
	for _, prefix := range prefixes {
		if key, found := strings.CutPrefix(imgURL, prefix); found && key != "" {
			return key, true
		}
	}
	return "", false
}
