package yaml

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/faasbind/internal/config"
	"github.com/vk/faasbind/internal/ctxlog"
)

func loadString(t *testing.T, source string) (*config.Manifest, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))

	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewLoader().Load(ctx, path)
}

func TestLoad_FullManifest(t *testing.T) {
	manifest, err := loadString(t, `
storages:
  - name: minio-local
    type: minio
    auth:
      user: muser
      pass: mpass
      host: 127.0.0.1:9000
  - name: s3-bucket
    type: s3
functions:
  - name: plants
    inputs:
      - storage: minio-local
        path: my-bucket/test
    outputs:
      - storage: minio-local
        path: my-bucket/test-output
        filter:
          suffix: [wav, srt]
`)
	require.NoError(t, err)

	require.Len(t, manifest.Storages, 2)
	assert.Equal(t, "minio-local", manifest.Storages[0].Name)
	assert.Equal(t, "muser", manifest.Storages[0].Auth["user"])
	assert.NotNil(t, manifest.Storages[1].Auth)
	assert.Empty(t, manifest.Storages[1].Auth)

	require.Len(t, manifest.Functions, 1)
	fn := manifest.Functions[0]
	require.Len(t, fn.Inputs, 1)
	require.Len(t, fn.Outputs, 1)
	assert.Equal(t, []string{"wav", "srt"}, fn.Outputs[0].Filter.Suffix)
}

func TestLoad_DeclarationOrderPreserved(t *testing.T) {
	manifest, err := loadString(t, `
storages:
  - name: zeta
    type: s3
  - name: alpha
    type: s3
  - name: mid
    type: s3
`)
	require.NoError(t, err)
	require.Len(t, manifest.Storages, 3)
	assert.Equal(t, "zeta", manifest.Storages[0].Name)
	assert.Equal(t, "alpha", manifest.Storages[1].Name)
	assert.Equal(t, "mid", manifest.Storages[2].Name)
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	_, err := loadString(t, `
storages:
  - name: minio-local
    type: minio
    region: eu-west-1
`)
	require.Error(t, err)
	var validation *config.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestLoad_UnknownAuthFieldFlowsThrough(t *testing.T) {
	// Unrecognized auth capability names are not a loader concern; the
	// registry owns InvalidAuthError.
	manifest, err := loadString(t, `
storages:
  - name: minio-local
    type: minio
    auth:
      user: u
      wormhole: x
`)
	require.NoError(t, err)
	assert.Equal(t, "x", manifest.Storages[0].Auth["wormhole"])
}

func TestLoad_DuplicateFunction(t *testing.T) {
	_, err := loadString(t, `
functions:
  - name: plants
  - name: plants
`)
	require.Error(t, err)
	var validation *config.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestLoad_EmptyDocument(t *testing.T) {
	manifest, err := loadString(t, "")
	require.NoError(t, err)
	assert.Empty(t, manifest.Storages)
	assert.Empty(t, manifest.Functions)
}
