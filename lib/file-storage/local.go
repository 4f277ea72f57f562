package filestorage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	cvapimodels "cvgen-backend/models/api/cv"
)

// localStorage writes artifacts under an uploads directory, the layout
// the delivery layer serves at /uploads/.
type localStorage struct {
	dir string
}

func (l *localStorage) Upload(_ context.Context, fileName string, data []byte, _ string) (cvapimodels.ArtifactRef, error) {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return cvapimodels.ArtifactRef{}, errors.Wrapf(err, "create uploads dir %s", l.dir)
	}
	path := filepath.Join(l.dir, fileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return cvapimodels.ArtifactRef{}, errors.Wrapf(err, "write %s", path)
	}
	return cvapimodels.ArtifactRef{FileName: fileName, URL: "/uploads/" + fileName}, nil
}
