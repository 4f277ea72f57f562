package initializers

import (
	"context"

	"cvgen-backend/config"
	docgen "cvgen-backend/lib/doc-gen"
	filestorage "cvgen-backend/lib/file-storage"
)

func InitAllServices(ctx context.Context) {
	InitLogger()
	config.InitConfig()
	if config.Conf.Storage.Provider == "s3" {
		InitS3(ctx)
	}
	filestorage.NewHandler()
	docgen.NewHandler()
}
