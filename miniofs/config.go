package miniofs

import (
	"fmt"

	"github.com/minio/minio-go/v7"
)

// Config holds MinIO backend configuration.
type Config struct {
	// Endpoint is the MinIO server address (e.g. "localhost:9000").
	Endpoint string

	// Bucket is the S3 bucket name.
	Bucket string

	// AccessKey is the access key ID for authentication.
	AccessKey string

	// SecretKey is the secret access key for authentication.
	SecretKey string

	// UseSSL enables HTTPS connections.
	UseSSL bool

	// Prefix is an optional key prefix for namespacing all paths.
	Prefix string

	// Client is an optional pre-configured MinIO client.
	// If provided, Endpoint/AccessKey/SecretKey are ignored.
	Client *minio.Client

	// MaxMoveConcurrency limits concurrent copies during directory
	// moves. Defaults to 10.
	MaxMoveConcurrency int
}

// validate checks the configuration. Either Client or the full
// Endpoint/AccessKey/SecretKey triple must be provided; Bucket always.
func (c *Config) validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	if c.Client != nil {
		return nil
	}
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required when client is not provided")
	}
	if c.AccessKey == "" {
		return fmt.Errorf("access key is required when client is not provided")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key is required when client is not provided")
	}
	return nil
}
