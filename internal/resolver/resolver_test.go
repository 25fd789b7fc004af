package resolver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/faasbind/internal/config"
	"github.com/vk/faasbind/internal/ctxlog"
	"github.com/vk/faasbind/internal/registry"
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	_, err := r.Register("minio-local", registry.TypeMinio, map[string]string{
		"user": "muser", "pass": "mpass", "host": "127.0.0.1:9000",
	})
	require.NoError(t, err)
	_, err = r.Register("s3-bucket", registry.TypeS3, map[string]string{})
	require.NoError(t, err)
	return r
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

func TestValidate_ResolvesBindings(t *testing.T) {
	v := New(newRegistry(t))

	fn := &config.Function{
		Name: "plants",
		Inputs: []*config.Binding{
			{StorageRef: "minio-local", Path: "my-bucket/test"},
		},
		Outputs: []*config.Binding{
			{StorageRef: "minio-local", Path: "my-bucket/test-output", Filter: &config.Filter{Suffix: []string{"wav", "srt"}}},
			{StorageRef: "s3-bucket", Path: "other-bucket/out"},
		},
	}

	resolved, err := v.Validate(fn)
	require.NoError(t, err)
	require.Len(t, resolved.Inputs, 1)
	require.Len(t, resolved.Outputs, 2)
	assert.Equal(t, registry.ID(1), resolved.Inputs[0].StorageID)
	assert.Equal(t, registry.ID(1), resolved.Outputs[0].StorageID)
	assert.Equal(t, registry.ID(2), resolved.Outputs[1].StorageID)
	assert.Equal(t, []string{"wav", "srt"}, resolved.Outputs[0].Filter.Suffix)
}

func TestValidate_UnknownStorage(t *testing.T) {
	v := New(newRegistry(t))

	fn := &config.Function{
		Name:   "plants",
		Inputs: []*config.Binding{{StorageRef: "ghost", Path: "p"}},
	}

	resolved, err := v.Validate(fn)
	require.Error(t, err)
	assert.Nil(t, resolved)
	var unknown *registry.UnknownStorageError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ghost", unknown.Name)
}

func TestValidate_DuplicateBindingSameDirection(t *testing.T) {
	v := New(newRegistry(t))

	fn := &config.Function{
		Name: "plants",
		Inputs: []*config.Binding{
			{StorageRef: "minio-local", Path: "a"},
			{StorageRef: "minio-local", Path: "b"},
		},
	}

	_, err := v.Validate(fn)
	require.Error(t, err)
	var dup *DuplicateBindingError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "plants", dup.Function)
	assert.Equal(t, "minio-local", dup.Storage)
	assert.Equal(t, DirectionInput, dup.Direction)
}

func TestValidate_SameStorageBothDirections(t *testing.T) {
	v := New(newRegistry(t))

	// Binding one storage as input and output is fine; only duplicates
	// within one direction are rejected.
	fn := &config.Function{
		Name:    "plants",
		Inputs:  []*config.Binding{{StorageRef: "minio-local", Path: "in"}},
		Outputs: []*config.Binding{{StorageRef: "minio-local", Path: "out"}},
	}

	_, err := v.Validate(fn)
	require.NoError(t, err)
}

func TestValidate_AmbiguousFilter(t *testing.T) {
	v := New(newRegistry(t))

	fn := &config.Function{
		Name: "plants",
		Outputs: []*config.Binding{
			{StorageRef: "minio-local", Path: "out", Filter: &config.Filter{
				Suffix: []string{"wav"},
				Prefix: []string{"result-"},
			}},
		},
	}

	_, err := v.Validate(fn)
	require.Error(t, err)
	var ambiguous *AmbiguousFilterError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, "plants", ambiguous.Function)
}

func TestValidate_AbsentFilterIsAllFiles(t *testing.T) {
	v := New(newRegistry(t))

	fn := &config.Function{
		Name:    "plants",
		Outputs: []*config.Binding{{StorageRef: "minio-local", Path: "out"}},
	}

	resolved, err := v.Validate(fn)
	require.NoError(t, err)
	assert.Nil(t, resolved.Outputs[0].Filter)
}

func TestValidate_FailsFastWithinFunction(t *testing.T) {
	v := New(newRegistry(t))

	// The duplicate input comes first; the ambiguous output filter after it
	// must not be reached.
	fn := &config.Function{
		Name: "plants",
		Inputs: []*config.Binding{
			{StorageRef: "minio-local", Path: "a"},
			{StorageRef: "minio-local", Path: "b"},
		},
		Outputs: []*config.Binding{
			{StorageRef: "s3-bucket", Path: "out", Filter: &config.Filter{
				Suffix: []string{"wav"}, Prefix: []string{"x-"},
			}},
		},
	}

	_, err := v.Validate(fn)
	require.Error(t, err)
	var dup *DuplicateBindingError
	require.ErrorAs(t, err, &dup)
	var ambiguous *AmbiguousFilterError
	assert.False(t, errors.As(err, &ambiguous))
}

func TestValidateAll_AggregatesAcrossFunctions(t *testing.T) {
	v := New(newRegistry(t))

	fns := []*config.Function{
		{Name: "bad-ref", Inputs: []*config.Binding{{StorageRef: "ghost", Path: "p"}}},
		{Name: "good", Inputs: []*config.Binding{{StorageRef: "minio-local", Path: "p"}}},
		{Name: "bad-dup", Outputs: []*config.Binding{
			{StorageRef: "s3-bucket", Path: "a"},
			{StorageRef: "s3-bucket", Path: "b"},
		}},
	}

	resolved, err := v.ValidateAll(testContext(t), fns)
	require.Error(t, err)

	// Both broken functions show up in one report.
	var unknown *registry.UnknownStorageError
	require.ErrorAs(t, err, &unknown)
	var dup *DuplicateBindingError
	require.ErrorAs(t, err, &dup)

	// The clean function still resolved.
	require.Len(t, resolved, 1)
	assert.Equal(t, "good", resolved[0].Name)
}
