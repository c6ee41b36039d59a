package storage_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	blobstorage "github.com/marcos-nsantos/personal-assistant/internal/adapter/storage"
	"github.com/marcos-nsantos/personal-assistant/internal/infrastructure/config"
	"github.com/marcos-nsantos/personal-assistant/internal/infrastructure/storage"
)

const (
	minioUser     = "minioadmin"
	minioPassword = "minioadmin"
	testBucket    = "assistant-test"
)

func setupMinio(t *testing.T) config.S3Config {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:latest",
			ExposedPorts: []string{"9000/tcp"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     minioUser,
				"MINIO_ROOT_PASSWORD": minioPassword,
			},
			Cmd:        []string{"server", "/data"},
			WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp"),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("skipping s3 integration test: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.PortEndpoint(ctx, "9000/tcp", "http")
	require.NoError(t, err)

	cfg := config.S3Config{
		Endpoint:        endpoint,
		Region:          "us-east-1",
		Bucket:          testBucket,
		Prefix:          "snapshots",
		AccessKeyID:     minioUser,
		SecretAccessKey: minioPassword,
		UsePathStyle:    true,
	}

	admin := s3.New(s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(minioUser, minioPassword, ""),
		BaseEndpoint: aws.String(endpoint),
		UsePathStyle: true,
	})
	_, err = admin.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(testBucket)})
	require.NoError(t, err)

	return cfg
}

func TestS3Storage_Integration(t *testing.T) {
	cfg := setupMinio(t)
	store, err := storage.NewS3Storage(cfg)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Read(ctx, "addressbook.json")
		assert.ErrorIs(t, err, blobstorage.ErrObjectNotFound)
	})

	t.Run("write then read", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, "addressbook.json", []byte(`{}`)))

		data, err := store.Read(ctx, "addressbook.json")
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "addressbook.json"))

		_, err := store.Read(ctx, "addressbook.json")
		assert.ErrorIs(t, err, blobstorage.ErrObjectNotFound)
	})
}
