package repositories

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
)

type stubS3 struct {
	gotBucket string
	gotKey    string
	body      []byte
	err       error
}

func (s *stubS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	s.gotBucket = *params.Bucket
	s.gotKey = *params.Key
	if s.err != nil {
		return nil, s.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(s.body))}, nil
}

func TestImageRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns blob bytes", func(t *testing.T) {
		stub := &stubS3{body: []byte{0xFF, 0xD8, 0xFF}}
		repo := NewImageRepository(stub, "productos")

		data, err := repo.Get(ctx, "keyboard.jpg")
		assert.NoError(t, err)
		assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, data)
		assert.Equal(t, "productos", stub.gotBucket)
		assert.Equal(t, "keyboard.jpg", stub.gotKey)
	})

	t.Run("propagates store error", func(t *testing.T) {
		stub := &stubS3{err: errors.New("NoSuchKey")}
		repo := NewImageRepository(stub, "productos")

		data, err := repo.Get(ctx, "missing.jpg")
		assert.Error(t, err)
		assert.Nil(t, data)
	})
}
