package hashfs

import (
	"github.com/opencontainers/go-digest"
)

// Address is the placement record of stored content.
type Address struct {
	// Digest is the content hash in algorithm:hex form.
	Digest digest.Digest `json:"digest" yaml:"digest"`

	// RelPath is the sharded path relative to the storage root, extension
	// included when one was stored.
	RelPath string `json:"rel_path" yaml:"rel_path"`

	// AbsPath is the absolute filesystem path of the stored file.
	AbsPath string `json:"abs_path" yaml:"abs_path"`

	// IsDuplicate reports whether the content already existed when it was
	// stored.
	IsDuplicate bool `json:"is_duplicate,omitempty" yaml:"is_duplicate,omitempty"`
}

// HexID returns the bare hex of the content hash without the algorithm
// prefix. It is the id form engines accept next to relative paths.
func (a Address) HexID() string {
	return a.Digest.Encoded()
}
