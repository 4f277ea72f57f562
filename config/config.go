package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		Name string `default:"cvgen" env:"APP_NAME"`
	}
	Storage struct {
		// Provider selects the artifact backend: "s3" or "local".
		Provider   string `default:"local" env:"STORAGE_PROVIDER"`
		UploadsDir string `default:"uploads" env:"STORAGE_UPLOADS_DIR"`
		// PublicURL, when set, prefixes returned artifact URLs.
		PublicURL string `default:"" env:"STORAGE_PUBLIC_URL"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"cvgen" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
