package utils

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"backend/config"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

var s3Client *s3.Client

var keyUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func InitS3() {
	s3Region := os.Getenv("S3_REGION")
	if s3Region == "" {
		s3Region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(s3Region))
	if err != nil {
		config.Log.Fatalw("unable to load AWS config for S3", "error", err)
	}

	s3Client = s3.NewFromConfig(cfg)
}

// BuildObjectKey makes a collision-resistant storage key:
// <folder>/<unix-nano>-<uuid8>-<sanitized filename>.
func BuildObjectKey(folder, filename string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		folder = "general"
	}
	name := keyUnsafe.ReplaceAllString(filename, "-")
	return fmt.Sprintf("%s/%d-%s-%s",
		folder,
		time.Now().UnixNano(),
		uuid.NewString()[:8],
		name,
	)
}

// UploadToS3 stores the blob public-read and returns its resolvable URL plus
// the storage-relative key.
func UploadToS3(data []byte, folder, filename, contentType string) (string, string, error) {
	key := BuildObjectKey(folder, filename)

	_, err := s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	base := os.Getenv("CLOUDFRONT_URL")
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.amazonaws.com", os.Getenv("S3_BUCKET"))
	}
	return fmt.Sprintf("%s/%s", base, key), key, nil
}
