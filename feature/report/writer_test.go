package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"ams-coverage/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.html")

	require.NoError(t, WriteFile(path, []byte("first run, longer content")))
	require.NoError(t, WriteFile(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestWriteFile_UnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := WriteFile(filepath.Join(blocker, "report.html"), []byte("x"))
	assert.Error(t, err)
}

func TestPublisher_Publish(t *testing.T) {
	client := new(mocks.Client)
	doc := []byte("<html></html>")

	client.On("BucketExists", mock.Anything, "reports").Return(true, nil)
	client.On("PutObject", mock.Anything, "reports", "reports/latest.html", mock.MatchedBy(func(r *bytes.Reader) bool {
		return r.Len() == len(doc)
	}), int64(len(doc)), minio.PutObjectOptions{ContentType: "text/html; charset=utf-8"}).
		Return(minio.UploadInfo{Bucket: "reports", Key: "reports/latest.html", Size: int64(len(doc))}, nil)

	info, err := NewPublisher(client, "reports", "").Publish(context.Background(), "reports/latest.html", doc, ContentType(FormatHTML))
	require.NoError(t, err)
	assert.Equal(t, "reports/latest.html", info.Key)
	client.AssertExpectations(t)
}

func TestPublisher_PutFails(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "reports").Return(true, nil)
	client.On("PutObject", mock.Anything, "reports", "r.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	_, err := NewPublisher(client, "reports", "").Publish(context.Background(), "r.json", []byte("{}"), ContentType(FormatJSON))
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPublisher_BucketCheckFails(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "reports").Return(false, assert.AnError)

	_, err := NewPublisher(client, "reports", "").Publish(context.Background(), "r.json", []byte("{}"), ContentType(FormatJSON))
	assert.ErrorIs(t, err, assert.AnError)
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
