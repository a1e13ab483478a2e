package hashfs

import (
	"context"
	"io"
	"net/http"

	"github.com/wuxler/ruafs/pkg/errdefs"
	"github.com/wuxler/ruafs/pkg/util/xhttp"
	"github.com/wuxler/ruafs/pkg/util/xurl"
)

// FileStorage is the application-facing handle pairing a validated Config
// with exactly one opened storage engine. Create it with New during startup
// and treat it as read-only afterwards; all methods are then safe for
// concurrent use from request handlers.
type FileStorage struct {
	config  Config
	storage Storage
}

// New validates cfg and opens the storage engine through opener. A validation
// failure aborts initialization before the opener runs, so no partially
// configured handle ever exists.
func New(ctx context.Context, cfg Config, opener StorageOpener) (*FileStorage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opener == nil {
		return nil, errdefs.Newf(errdefs.ErrInvalidParameter, "storage opener is required")
	}
	storage, err := opener(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &FileStorage{
		config:  cfg,
		storage: storage,
	}, nil
}

// Config returns a copy of the configuration the handle was opened with.
func (fs *FileStorage) Config() Config {
	return fs.config
}

// Storage exposes the underlying engine client.
func (fs *FileStorage) Storage() Storage {
	return fs.storage
}

// URLFor returns the root-relative URL for content at relpath. This is pure
// composition: the content's existence is never checked.
func (fs *FileStorage) URLFor(relpath string) string {
	return xurl.Join("/", fs.config.PathPrefix, relpath)
}

// ExternalURLFor returns the absolute URL for content at relpath. The
// configured Host wins; the caller-supplied request origin is the fallback.
// With neither set the URL degrades to the root-relative form.
func (fs *FileStorage) ExternalURLFor(origin, relpath string) string {
	host := fs.config.Host
	if host == "" {
		host = origin
	}
	return xurl.Join(host, "/", fs.config.PathPrefix, relpath)
}

// RequestURL returns the URL for content at relpath in the context of a live
// request. Internal URLs are always root-relative regardless of the
// configured Host; external URLs use the configured Host when set and the
// request's origin otherwise.
func (fs *FileStorage) RequestURL(r *http.Request, relpath string, external bool) string {
	if !external {
		return fs.URLFor(relpath)
	}
	origin := ""
	if r != nil {
		origin = xhttp.RequestOrigin(r)
	}
	return fs.ExternalURLFor(origin, relpath)
}

// Put stores the content read from r through the underlying engine.
func (fs *FileStorage) Put(ctx context.Context, r io.Reader, opts ...PutOption) (Address, error) {
	return fs.storage.Put(ctx, r, opts...)
}

// Get resolves an id or relative path through the underlying engine.
func (fs *FileStorage) Get(ctx context.Context, idOrPath string) (Address, error) {
	return fs.storage.Get(ctx, idOrPath)
}

// Open returns a reader over stored content through the underlying engine.
func (fs *FileStorage) Open(ctx context.Context, idOrPath string) (io.ReadCloser, error) {
	return fs.storage.Open(ctx, idOrPath)
}

// Delete removes stored content through the underlying engine.
func (fs *FileStorage) Delete(ctx context.Context, idOrPath string) error {
	return fs.storage.Delete(ctx, idOrPath)
}
