package catalogue

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"ams-coverage/core/reconcile"
	"ams-coverage/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFileSource_Load(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	src := NewFileSource("testdata/ams_config_rules.csv", zap.New(core))

	rules, err := src.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, rules, 3)
	assert.Equal(t, "S3_BUCKET_VERSIONING_ENABLED", rules[0].SourceIdentifier)
	assert.Equal(t, "ROOT_ACCOUNT_MFA_ENABLED", rules[1].SourceIdentifier)
	assert.Equal(t, "ENCRYPTED_VOLUMES", rules[2].SourceIdentifier)
	assert.Equal(t, "EC2", rules[2].Service)

	warnings := logs.FilterMessage("Skipped malformed catalogue lines").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, int64(3), warnings[0].ContextMap()["skipped"])
}

func TestFileSource_Missing(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "absent.csv"), nil)

	rules, err := src.Load(context.Background())
	assert.Nil(t, rules)
	assert.True(t, reconcile.IsSourceUnavailable(err))
}

func TestStorageSource_Load(t *testing.T) {
	client := new(mocks.Client)
	body := io.NopCloser(strings.NewReader("Rule,ID_1,https://docs/1,S3\nbad\n"))
	client.On("GetObject", mock.Anything, "ams", "catalogue.csv", minio.GetObjectOptions{}).Return(body, nil)

	src, err := NewSource(Config{Driver: DriverStorage, ObjectName: "catalogue.csv"}, Dependencies{Storage: client, Bucket: "ams"})
	require.NoError(t, err)
	assert.Equal(t, "s3://ams/catalogue.csv", src.Describe())

	rules, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []reconcile.CatalogueRule{{Name: "Rule", SourceIdentifier: "ID_1", DocLink: "https://docs/1", Service: "S3"}}, rules)
	client.AssertExpectations(t)
}

func TestStorageSource_Unavailable(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "ams", "catalogue.csv", mock.Anything).Return(nil, assert.AnError)

	src, err := NewSource(Config{Driver: DriverStorage, ObjectName: "catalogue.csv"}, Dependencies{Storage: client, Bucket: "ams"})
	require.NoError(t, err)

	_, err = src.Load(context.Background())
	assert.True(t, reconcile.IsSourceUnavailable(err))
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNewSource(t *testing.T) {
	src, err := NewSource(Config{Driver: DriverFile, Path: "rules.csv"}, Dependencies{})
	require.NoError(t, err)
	assert.Equal(t, "rules.csv", src.Describe())

	src, err = NewSource(Config{Path: "rules.csv"}, Dependencies{})
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, src)

	_, err = NewSource(Config{Driver: DriverStorage}, Dependencies{})
	assert.ErrorContains(t, err, "requires a storage client")

	_, err = NewSource(Config{Driver: DriverDatabase}, Dependencies{})
	assert.ErrorContains(t, err, "requires a database connection")

	_, err = NewSource(Config{Driver: "ftp"}, Dependencies{})
	assert.EqualError(t, err, `unsupported catalogue driver "ftp"`)
}
