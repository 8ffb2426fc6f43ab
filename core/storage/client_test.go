package storage_test

import (
	"context"
	"testing"

	"grail-tracker/core/storage"
	"grail-tracker/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "grail",
			Region:    "us-east-1",
		})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
		})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestEnsureBucket(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "grail").Return(true, nil)

		require.NoError(t, storage.EnsureBucket(context.Background(), m, "grail", ""))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "grail").Return(false, nil)
		m.On("MakeBucket", mock.Anything, "grail", mock.Anything).Return(nil)

		require.NoError(t, storage.EnsureBucket(context.Background(), m, "grail", ""))
		m.AssertNumberOfCalls(t, "MakeBucket", 1)
	})

	t.Run("Check Fails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "grail").Return(false, assert.AnError)

		err := storage.EnsureBucket(context.Background(), m, "grail", "")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestReadWriteObject(t *testing.T) {
	m := new(mocks.Client)
	m.OnObject("grail", "catalog/runes.json", []byte(`{"El":{}}`))
	m.On("PutObject", mock.Anything, "grail", "exports/a.json", mock.Anything, int64(2), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
		return opts.ContentType == "application/json"
	})).Return(minio.UploadInfo{}, nil)

	data, err := storage.ReadObject(context.Background(), m, "grail", "catalog/runes.json")
	require.NoError(t, err)
	assert.Equal(t, `{"El":{}}`, string(data))

	require.NoError(t, storage.WriteObject(context.Background(), m, "grail", "exports/a.json", []byte("[]"), "application/json"))
	m.AssertExpectations(t)
}

func TestObjectExists(t *testing.T) {
	m := new(mocks.Client)
	m.OnListing("grail", "catalog/sets.json", "catalog/sets.json")
	m.OnListing("grail", "catalog/runes.json", "catalog/runes.json.bak")

	ok, err := storage.ObjectExists(context.Background(), m, "grail", "catalog/sets.json")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = storage.ObjectExists(context.Background(), m, "grail", "catalog/runes.json")
	require.NoError(t, err)
	assert.False(t, ok, "prefix matches are not exact matches")
}
