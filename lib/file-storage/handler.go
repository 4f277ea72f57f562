package filestorage

import (
	"context"

	log "github.com/sirupsen/logrus"

	"cvgen-backend/config"
	cvapimodels "cvgen-backend/models/api/cv"
	s3client "cvgen-backend/s3"
)

// Provider persists rendered artifact bytes under their storage key.
// Transient failures propagate to the caller; no retry happens here.
type Provider interface {
	Upload(ctx context.Context, fileName string, data []byte, contentType string) (cvapimodels.ArtifactRef, error)
}

var Instance Provider

func NewHandler() {
	switch config.Conf.Storage.Provider {
	case "s3":
		Instance = &s3Storage{client: s3client.Client}
	default:
		Instance = &localStorage{dir: config.Conf.Storage.UploadsDir}
	}
	log.WithField("provider", config.Conf.Storage.Provider).Info("file storage initialized")
}
