package store

import (
	"context"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// cloud drivers selectable through the bucket URL scheme
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// SupportedBlobSchemes lists the bucket URL schemes registered by this package
var SupportedBlobSchemes = []string{"gs://", "s3://", "azblob://"}

type (
	// BlobStorage keeps keys as objects in a gocloud.dev bucket
	BlobStorage struct {
		bucket *blob.Bucket
		prefix string
	}
	BlobOption func(*BlobStorage)
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

// OpenBlobStorage opens bucketURL, e.g. "gs://my-bucket" or "s3://my-bucket?region=eu-central-1"
func OpenBlobStorage(ctx context.Context, bucketURL string, opts ...BlobOption) (*BlobStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", bucketURL)
	}
	return NewBlobStorage(bucket, opts...), nil
}

// NewBlobStorage wraps an already opened bucket
func NewBlobStorage(bucket *blob.Bucket, opts ...BlobOption) *BlobStorage {
	inst := &BlobStorage{
		bucket: bucket,
	}
	for _, opt := range opts {
		opt(inst)
	}
	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

// BlobWithPrefix stores every key below prefix
func BlobWithPrefix(v string) BlobOption {
	return func(o *BlobStorage) {
		if v != "" && !strings.HasSuffix(v, "/") {
			v += "/"
		}
		o.prefix = v
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

func (b *BlobStorage) Name() string {
	return "blob"
}

func (b *BlobStorage) Write(ctx context.Context, key string, data []byte) error {
	return b.bucket.WriteAll(ctx, b.prefix+key, data, &blob.WriterOptions{
		ContentType: "application/json",
	})
}

func (b *BlobStorage) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := b.bucket.ReadAll(ctx, b.prefix+key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, os.ErrNotExist
	}
	return data, err
}

func (b *BlobStorage) List(ctx context.Context, prefix string) ([]string, error) {
	iter := b.bucket.List(&blob.ListOptions{
		Prefix: b.prefix + prefix,
	})

	var keys []string
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if obj.IsDir {
			continue
		}
		keys = append(keys, strings.TrimPrefix(obj.Key, b.prefix))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys, nil
}

func (b *BlobStorage) Delete(ctx context.Context, key string) error {
	err := b.bucket.Delete(ctx, b.prefix+key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}
	return err
}

func (b *BlobStorage) Close() error {
	return b.bucket.Close()
}
