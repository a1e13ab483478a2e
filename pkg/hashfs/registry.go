package hashfs

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/wuxler/ruafs/pkg/errdefs"
)

// Registry holds named FileStorage handles for an application scope. Entries
// are write-once: registering a name a second time fails instead of silently
// replacing a handle request handlers may already hold. Lookups are lock-free
// and safe from any number of goroutines.
type Registry struct {
	handles *xsync.MapOf[string, *FileStorage]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handles: xsync.NewMapOf[string, *FileStorage](),
	}
}

// Register stores fs under name. Returns errdefs.ErrAlreadyExists when the
// name is taken.
func (r *Registry) Register(name string, fs *FileStorage) error {
	if fs == nil {
		return errdefs.Newf(errdefs.ErrInvalidParameter, "nil handle for storage %q", name)
	}
	if _, loaded := r.handles.LoadOrStore(name, fs); loaded {
		return errdefs.Newf(errdefs.ErrAlreadyExists, "storage %q is already registered", name)
	}
	return nil
}

// Lookup returns the handle registered under name.
func (r *Registry) Lookup(name string) (*FileStorage, bool) {
	return r.handles.Load(name)
}

// MustLookup returns the handle registered under name and panics when it is
// missing. Reserve it for handles registered unconditionally at startup.
func (r *Registry) MustLookup(name string) *FileStorage {
	fs, ok := r.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("hashfs: storage %q is not registered", name))
	}
	return fs
}

// Names returns the registered names in no particular order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.handles.Size())
	r.handles.Range(func(name string, _ *FileStorage) bool {
		names = append(names, name)
		return true
	})
	return names
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by the package-level
// helpers, for the common one-application case.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register stores fs under name in the process-wide registry.
func Register(name string, fs *FileStorage) error {
	return defaultRegistry.Register(name, fs)
}

// Lookup returns the handle registered under name in the process-wide
// registry.
func Lookup(name string) (*FileStorage, bool) {
	return defaultRegistry.Lookup(name)
}
