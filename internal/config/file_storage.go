package config

import (
	"time"
)

type StorageConfig struct {
	AWS *AWSStorageConfig `yaml:"aws"`

	// Multi-file vehicle uploads are slow; requests that carry them
	// get this much time before the server gives up.
	UploadTimeout time.Duration `yaml:"upload_timeout"`
}

type AWSStorageConfig struct {
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	CDNDomain string `yaml:"cdn_domain"`
}

func loadStorageConfig() *StorageConfig {
	return &StorageConfig{
		AWS: &AWSStorageConfig{
			Region:    getEnv("AWS_S3_REGION", "us-east-1"),
			Bucket:    getEnv("AWS_S3_BUCKET", ""),
			CDNDomain: getEnv("AWS_CLOUDFRONT_DOMAIN", ""),
		},
		UploadTimeout: getEnvAsDuration("UPLOAD_TIMEOUT", 5*time.Minute),
	}
}
