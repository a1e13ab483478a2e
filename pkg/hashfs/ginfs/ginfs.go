// Package ginfs binds hashfs handles into the gin request lifecycle. It
// injects a FileStorage for handlers to build URLs with and logs request
// completions; no route serving file content is registered here.
package ginfs

import (
	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"

	"github.com/wuxler/ruafs/pkg/hashfs"
	"github.com/wuxler/ruafs/pkg/xlog"
)

// contextKey is the gin context key the handle is stored under.
const contextKey = "ruafs/filestorage"

// Middleware injects fs into every request context so downstream handlers
// can retrieve it with FromContext and build URLs with URLFor.
func Middleware(fs *hashfs.FileStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKey, fs)
		c.Next()
	}
}

// FromContext returns the handle injected by Middleware.
func FromContext(c *gin.Context) (*hashfs.FileStorage, bool) {
	value, ok := c.Get(contextKey)
	if !ok {
		return nil, false
	}
	fs, ok := value.(*hashfs.FileStorage)
	return fs, ok
}

// URLFor builds the URL for content at relpath in the context of the current
// request, using the handle injected by Middleware. Returns the empty string
// when no handle is bound.
func URLFor(c *gin.Context, relpath string, external bool) string {
	fs, ok := FromContext(c)
	if !ok {
		return ""
	}
	return fs.RequestURL(c.Request, relpath, external)
}

// LoggerOption configures RequestLogger.
type LoggerOption func(*loggerOptions)

type loggerOptions struct {
	clock clock.Clock
}

// WithClock replaces the wall clock used to measure request duration, for
// deterministic tests.
func WithClock(clk clock.Clock) LoggerOption {
	return func(o *loggerOptions) {
		o.clock = clk
	}
}

// RequestLogger returns a middleware logging one line per completed request
// with method, path, status and duration.
func RequestLogger(opts ...LoggerOption) gin.HandlerFunc {
	o := &loggerOptions{
		clock: clock.New(),
	}
	for _, apply := range opts {
		apply(o)
	}
	return func(c *gin.Context) {
		start := o.clock.Now()
		c.Next()
		xlog.C(c.Request.Context()).Info("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", o.clock.Since(start),
		)
	}
}
