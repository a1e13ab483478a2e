package hashfs

import (
	"context"
	"io"

	"github.com/wuxler/ruafs/pkg/errdefs"
)

// NopOpener returns an opener whose Storage rejects every operation with
// errdefs.ErrUnavailable. It lets URL-only callers, like command line tools
// composing URLs from configuration, construct a FileStorage without binding
// a real engine.
func NopOpener() StorageOpener {
	return func(_ context.Context, _ Config) (Storage, error) {
		return nopStorage{}, nil
	}
}

type nopStorage struct{}

func (nopStorage) Put(_ context.Context, _ io.Reader, _ ...PutOption) (Address, error) {
	return Address{}, errdefs.Newf(errdefs.ErrUnavailable, "no storage engine bound")
}

func (nopStorage) Get(_ context.Context, _ string) (Address, error) {
	return Address{}, errdefs.Newf(errdefs.ErrUnavailable, "no storage engine bound")
}

func (nopStorage) Open(_ context.Context, _ string) (io.ReadCloser, error) {
	return nil, errdefs.Newf(errdefs.ErrUnavailable, "no storage engine bound")
}

func (nopStorage) Delete(_ context.Context, _ string) error {
	return errdefs.Newf(errdefs.ErrUnavailable, "no storage engine bound")
}
