package filestorage

import (
	"bytes"
	"context"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"cvgen-backend/config"
	cvapimodels "cvgen-backend/models/api/cv"
)

// uploadsPrefix namespaces artifact objects inside the bucket.
const uploadsPrefix = "uploads/"

type s3Storage struct {
	client *minio.Client
}

func (s *s3Storage) Upload(ctx context.Context, fileName string, data []byte, contentType string) (cvapimodels.ArtifactRef, error) {
	if s.client == nil {
		return cvapimodels.ArtifactRef{}, errors.New("s3 client is not initialized")
	}
	key := uploadsPrefix + fileName
	_, err := s.client.PutObject(ctx, config.Conf.S3.BucketName, key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
			// Upload timestamp for the external retention collaborator.
			UserMetadata: map[string]string{"upload-date": time.Now().UTC().Format(time.RFC3339)},
		})
	if err != nil {
		return cvapimodels.ArtifactRef{}, errors.Wrapf(err, "upload %s to s3", key)
	}

	url := key
	if base := config.Conf.Storage.PublicURL; base != "" {
		url = base + "/" + key
	}
	return cvapimodels.ArtifactRef{FileName: fileName, URL: url}, nil
}
