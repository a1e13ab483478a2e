// Package xurl provides URL path joining helpers.
package xurl

import (
	"strings"

	"github.com/samber/lo"
)

// Join concatenates path segments with "/" into a single normalized path.
//
// Empty segments are dropped. Each remaining segment sheds its leading and
// trailing slashes, keeping interior ones, and the pieces are joined with
// single slashes. The leading slash of the first non-empty segment and the
// trailing slash of the last non-empty segment are preserved. A single
// surviving segment is returned verbatim so that a lone "/" does not grow
// a second slash.
//
//	Join()                          -> ""
//	Join("/")                       -> "/"
//	Join("a", "/")                  -> "a/"
//	Join("", "/a", "", "", "b")     -> "/a/b"
//	Join("/a/", "b/", "/c", "d")    -> "/a/b/c/d"
//	Join("a/b", "/c/d/", "/e/f")    -> "a/b/c/d/e/f"
//
// Join is pure and safe for concurrent use.
func Join(paths ...string) string {
	segments := lo.Filter(paths, func(path string, _ int) bool {
		return path != ""
	})
	if len(segments) == 0 {
		return ""
	}
	if len(segments) == 1 {
		return segments[0]
	}

	leading := ""
	if strings.HasPrefix(segments[0], "/") {
		leading = "/"
	}
	trailing := ""
	if strings.HasSuffix(segments[len(segments)-1], "/") {
		trailing = "/"
	}
	middle := lo.FilterMap(segments, func(path string, _ int) (string, bool) {
		stripped := strings.Trim(path, "/")
		return stripped, stripped != ""
	})
	return leading + strings.Join(middle, "/") + trailing
}
