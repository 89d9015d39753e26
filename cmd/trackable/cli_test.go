//go:build integration

package main_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rogpeppe/go-internal/testscript"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sapessi/trackable/cmd/trackable/cli"
)

const (
	minioUser   = "minioadmin"
	minioSecret = "minioadmin"
	testBucket  = "trackable-test"
)

// minioEndpoint holds the object store URL for all tests (set once in TestMain).
var minioEndpoint string

func TestMain(m *testing.M) {
	// Start MinIO before running tests
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, endpoint, err := startMinio(ctx)
	if err != nil {
		panic("failed to start minio: " + err.Error())
	}
	minioEndpoint = endpoint

	if err := createBucket(ctx, endpoint); err != nil {
		panic("failed to create bucket: " + err.Error())
	}

	// Run tests with the trackable command available
	exitCode := testscript.RunMain(m, map[string]func() int{
		"trackable": func() int {
			if err := cli.Execute(); err != nil {
				return 1
			}
			return 0
		},
	})

	// Cleanup container
	if container != nil {
		_ = container.Terminate(context.Background())
	}

	os.Exit(exitCode)
}

func TestCLI(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			env.Setenv("ENDPOINT", minioEndpoint)
			env.Setenv("BUCKET", testBucket)
			env.Setenv("AWS_ACCESS_KEY_ID", minioUser)
			env.Setenv("AWS_SECRET_ACCESS_KEY", minioSecret)
			env.Setenv("AWS_REGION", "us-east-1")
			// Keep config lookups inside the work directory
			// (testscript sets HOME=/no-home which is read-only)
			env.Setenv("XDG_CONFIG_HOME", env.WorkDir+"/.config")
			return nil
		},
	})
}

// startMinio starts a MinIO container and returns its S3 endpoint URL.
func startMinio(ctx context.Context) (testcontainers.Container, string, error) {
	container, err := testcontainers.Run(ctx,
		"minio/minio:latest",
		testcontainers.WithExposedPorts("9000/tcp"),
		testcontainers.WithEnv(map[string]string{
			"MINIO_ROOT_USER":     minioUser,
			"MINIO_ROOT_PASSWORD": minioSecret,
		}),
		testcontainers.WithCmd("server", "/data"),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/minio/health/ready").
				WithPort("9000/tcp").
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, "", err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return container, "", err
	}

	port, err := container.MappedPort(ctx, "9000")
	if err != nil {
		return container, "", err
	}

	return container, "http://" + host + ":" + port.Port(), nil
}

// createBucket creates the test bucket the upload scripts target.
func createBucket(ctx context.Context, endpoint string) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("us-east-1"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(minioUser, minioSecret, ""),
		),
	)
	if err != nil {
		return err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	_, err = client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(testBucket),
	})
	return err
}
