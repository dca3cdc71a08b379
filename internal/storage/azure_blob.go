package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"go.uber.org/zap"
)

// containerInitTimeout bounds the create-if-missing call made at startup
const containerInitTimeout = 15 * time.Second

// archiveCacheControl stays short since a resent quotation reuses its key
const archiveCacheControl = "private, max-age=300"

// AzureBlobStorage keeps archived documents in one blob container
type AzureBlobStorage struct {
	client    *azblob.Client
	container string
	logger    *zap.Logger
}

// NewAzureBlobStorage connects to the account and makes sure the archive container exists
func NewAzureBlobStorage(connectionString, container string, logger *zap.Logger) (*AzureBlobStorage, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), containerInitTimeout)
	defer cancel()
	if _, err := client.CreateContainer(ctx, container, nil); err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create archive container %q: %w", container, err)
	}

	log := logger.Named("archive").With(zap.String("container", container))
	log.Info("Azure Blob archive ready")

	return &AzureBlobStorage{client: client, container: container, logger: log}, nil
}

// Upload stores the document, replacing any earlier version under the same key
func (s *AzureBlobStorage) Upload(ctx context.Context, key string, contentType string, data io.Reader) (int64, error) {
	name, err := cleanKey(key)
	if err != nil {
		return 0, err
	}

	cacheControl := archiveCacheControl
	body := &countingReader{r: data}
	_, err = s.client.UploadStream(ctx, s.container, name, body, &azblob.UploadStreamOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType:  &contentType,
			BlobCacheControl: &cacheControl,
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to archive %s: %w", name, err)
	}

	s.logger.Info("document archived",
		zap.String("key", name),
		zap.String("content_type", contentType),
		zap.Int64("bytes", body.n),
	)
	return body.n, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// Download opens an archived document; the caller closes it
func (s *AzureBlobStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	name, err := cleanKey(key)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.DownloadStream(ctx, s.container, name, nil)
	switch {
	case bloberror.HasCode(err, bloberror.BlobNotFound):
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return resp.Body, nil
}

// Delete removes an archived document. Deleting a missing key succeeds.
func (s *AzureBlobStorage) Delete(ctx context.Context, key string) error {
	name, err := cleanKey(key)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteBlob(ctx, s.container, name, nil)
	switch {
	case bloberror.HasCode(err, bloberror.BlobNotFound):
		s.logger.Debug("archived document already gone", zap.String("key", name))
		return nil
	case err != nil:
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}

	s.logger.Info("archived document deleted", zap.String("key", name))
	return nil
}
