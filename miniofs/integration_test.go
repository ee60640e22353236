package miniofs

import (
	"context"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	cloudpath "github.com/joshicola/cloud-path"
	"github.com/joshicola/cloud-path/backendtest"
)

// setupMinIO starts a MinIO container with one test bucket and returns a
// connected client.
func setupMinIO(t *testing.T) *minio.Client {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     "minioadmin",
			"MINIO_ROOT_PASSWORD": "minioadmin",
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp"),
	}

	minioC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start MinIO container")
	t.Cleanup(func() {
		_ = minioC.Terminate(context.Background())
	})

	endpoint, err := minioC.Endpoint(ctx, "")
	require.NoError(t, err, "failed to get container endpoint")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	require.NoError(t, err, "failed to create MinIO client")

	err = client.MakeBucket(ctx, "test-bucket", minio.MakeBucketOptions{})
	require.NoError(t, err, "failed to create test bucket")

	return client
}

// testPrefix derives a unique key prefix from the test name so every
// subtest gets an empty namespace in the shared bucket.
func testPrefix(t *testing.T) string {
	return strings.NewReplacer("/", "-", " ", "_").Replace(t.Name())
}

func TestConformanceIntegration(t *testing.T) {
	client := setupMinIO(t)

	backendtest.RunWithConfig(t, func(t *testing.T) cloudpath.Backend {
		m, err := New(Config{
			Client: client,
			Bucket: "test-bucket",
			Prefix: testPrefix(t),
		})
		require.NoError(t, err)
		return m
	}, backendtest.ObjectStoreConfig())
}

func TestPathRoundTripIntegration(t *testing.T) {
	client := setupMinIO(t)

	m, err := New(Config{Client: client, Bucket: "test-bucket", Prefix: testPrefix(t)})
	require.NoError(t, err)

	p := cloudpath.ResolveWith(m, cloudpath.Fragment("/reports/2024/jan.csv"))
	payload := []byte("date,total\n2024-01-31,42\n")
	require.NoError(t, p.WriteBytes(payload))

	got, err := p.ReadBytes()
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	isFile, err := p.IsFile()
	require.NoError(t, err)
	assert.True(t, isFile)

	isDir, err := cloudpath.ResolveWith(m, cloudpath.Fragment("/reports")).IsDir()
	require.NoError(t, err)
	assert.True(t, isDir, "a prefix with objects under it is a directory")

	var matches []string
	for match, merr := range cloudpath.ResolveWith(m, cloudpath.Fragment("/reports")).Glob("**/*.csv", false) {
		require.NoError(t, merr)
		matches = append(matches, match.String())
	}
	assert.Equal(t, []string{"/reports/2024/jan.csv"}, matches)

	moved, err := p.Rename("/reports/archive/jan.csv")
	require.NoError(t, err)

	got, err = moved.ReadBytes()
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	gone, err := p.Exists()
	require.NoError(t, err)
	assert.False(t, gone)

	require.NoError(t, moved.Remove(false))
	assert.ErrorIs(t, moved.Remove(false), cloudpath.ErrNotExist)
	assert.NoError(t, moved.Remove(true))
}

func TestMovePrefixIntegration(t *testing.T) {
	client := setupMinIO(t)

	m, err := New(Config{Client: client, Bucket: "test-bucket", Prefix: testPrefix(t), MaxMoveConcurrency: 4})
	require.NoError(t, err)

	src := cloudpath.ResolveWith(m, cloudpath.Fragment("/batch"))
	for _, name := range []string{"a.txt", "b.txt", "deep/c.txt"} {
		require.NoError(t, src.Join(name).WriteText(name))
	}

	_, err = src.Rename("/moved")
	require.NoError(t, err)

	dst := cloudpath.ResolveWith(m, cloudpath.Fragment("/moved"))
	for _, name := range []string{"a.txt", "b.txt", "deep/c.txt"} {
		text, rerr := dst.Join(name).ReadText()
		require.NoError(t, rerr, "object %s must exist after the move", name)
		assert.Equal(t, name, text)
	}

	exists, err := src.Exists()
	require.NoError(t, err)
	assert.False(t, exists, "the source prefix is gone after the move")
}
