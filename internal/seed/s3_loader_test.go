package seed

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"heladeria/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 serves objects from memory.
type fakeS3 struct {
	objects map[string][]byte
	calls   []string
}

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	key := aws.ToString(params.Key)
	f.calls = append(f.calls, aws.ToString(params.Bucket)+"/"+key)

	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

// mockLoader is a mock implementation of the Loader interface for testing.
type mockLoader struct {
	loadFunc func(ctx context.Context, path string) ([]model.Helado, error)
}

func (m *mockLoader) Load(ctx context.Context, path string) ([]model.Helado, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, path)
	}
	return nil, errors.New("not implemented")
}

func TestS3Loader_Load(t *testing.T) {
	client := &fakeS3{objects: map[string][]byte{
		"seeds/base.gz": gzipLines(t, []string{`{"sabor":"limon","precio":"2.75"}`}),
	}}
	loader := NewS3LoaderWithClient(client, "heladeria", zerolog.Nop())

	helados, err := loader.Load(context.Background(), "seeds/base.gz")

	require.NoError(t, err)
	assert.Equal(t, []model.Helado{{Sabor: "limon", Precio: "2.75"}}, helados)
	assert.Equal(t, []string{"heladeria/seeds/base.gz"}, client.calls)

	_, err = loader.Load(context.Background(), "seeds/missing.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get object from S3")
}

func TestFallbackLoader_S3Success(t *testing.T) {
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.Helado, error) {
			assert.Equal(t, "seeds/base.gz", path, "S3 key should have prefix")
			return []model.Helado{{Sabor: "s3", Precio: "1"}}, nil
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.Helado, error) {
			t.Error("file loader should not be called when S3 succeeds")
			return nil, errors.New("should not be called")
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "seeds/", zerolog.Nop())

	helados, err := fallback.Load(context.Background(), "base.gz")
	require.NoError(t, err)
	assert.Equal(t, "s3", helados[0].Sabor)
}

func TestFallbackLoader_S3FailsFallsBackToLocal(t *testing.T) {
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.Helado, error) {
			return nil, errors.New("S3 connection failed")
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.Helado, error) {
			assert.Equal(t, "base.gz", path, "local file path should not have prefix")
			return []model.Helado{{Sabor: "local", Precio: "1"}}, nil
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "seeds/", zerolog.Nop())

	helados, err := fallback.Load(context.Background(), "base.gz")
	require.NoError(t, err)
	assert.Equal(t, "local", helados[0].Sabor)
}

func TestFallbackLoader_NoS3UsesLocal(t *testing.T) {
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.Helado, error) {
			return []model.Helado{{Sabor: "local", Precio: "1"}}, nil
		},
	}

	fallback := NewFallbackLoader(nil, fileLoader, "seeds/", zerolog.Nop())

	helados, err := fallback.Load(context.Background(), "base.gz")
	require.NoError(t, err)
	assert.Len(t, helados, 1)
}
