package objstore

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader publica objetos num bucket S3. Usado para cópia externa
// de backups e para as fotos de serviços.
type Uploader struct {
	client *s3.Client
	bucket string
	region string
}

func New(region, bucket, accessKey, secretKey string) *Uploader {
	cfg := aws.Config{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	}

	return &Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

func (u *Uploader) Upload(
	ctx context.Context,
	key string,
	body io.Reader,
	contentType string,
) (string, error) {

	input := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := u.client.PutObject(ctx, input); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
