package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"askdoc/src/core/chunking"
	"askdoc/src/storage/minioctrl"
)

func settingDefaultConfig() {
	// Enable automatic environment variable binding
	viper.AutomaticEnv()

	// Map environment variables to Viper keys for MinIO and storage
	viper.BindEnv("minio.endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("minio.access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("minio.secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("minio.use_ssl", "MINIO_USE_SSL")
	viper.BindEnv("storage.bucket", "STORAGE_BUCKET")

	// Map environment variables to Viper keys for the document and chunking
	viper.BindEnv("document.key", "DOCUMENT_KEY")
	viper.BindEnv("chunking.size", "CHUNK_SIZE")
	viper.BindEnv("chunking.overlap", "CHUNK_OVERLAP")

	// Map environment variables to Viper keys for the server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.request_timeout", "SERVER_REQUEST_TIMEOUT")
	viper.BindEnv("server.shutdown_timeout", "SERVER_SHUTDOWN_TIMEOUT")

	// Set default values for MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)

	// Set default values for the document and chunking
	viper.SetDefault("document.key", "documents/current.txt")
	viper.SetDefault("chunking.size", chunking.DefaultChunkSize)
	viper.SetDefault("chunking.overlap", chunking.DefaultChunkOverlap)

	// Set default values for the server
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.request_timeout", "30s")
	viper.SetDefault("server.shutdown_timeout", "10s")

	// storage.bucket has no default: commands that touch storage fail
	// fast when it is unset.
}

func requireBucket() (string, error) {
	bucket := viper.GetString("storage.bucket")
	if bucket == "" {
		return "", fmt.Errorf("storage bucket is not configured, set STORAGE_BUCKET")
	}
	return bucket, nil
}

func newMinioService() (*minioctrl.MinioService, error) {
	return minioctrl.NewMinioService(
		viper.GetString("minio.endpoint"),
		viper.GetString("minio.access_key"),
		viper.GetString("minio.secret_key"),
		viper.GetBool("minio.use_ssl"),
	)
}
