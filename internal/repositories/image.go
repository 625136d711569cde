package repositories

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/avazquez/tienda-api/internal/logger"
)

// S3API is the subset of the S3 client used by the image repository.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// ImageRepository reads product images from an S3-compatible blob store.
// Images are fetched fresh on every request; there is no caching layer.
type ImageRepository struct {
	client S3API
	bucket string
}

func NewImageRepository(client S3API, bucket string) *ImageRepository {
	return &ImageRepository{client: client, bucket: bucket}
}

// Get returns the raw bytes stored under the given key.
func (r *ImageRepository) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Log.Errorw("failed to fetch image from blob store", "key", key, "error", err)
		return nil, err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)

	logger.Log.Infow("image fetched",
		"key", key,
		"size", len(data),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return data, nil
}
