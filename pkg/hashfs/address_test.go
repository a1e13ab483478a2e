package hashfs_test

import (
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"

	"github.com/wuxler/ruafs/pkg/hashfs"
)

func TestAddress_HexID(t *testing.T) {
	addr := hashfs.Address{Digest: digest.Digest("sha256:abcdef0123456789")}
	assert.Equal(t, "abcdef0123456789", addr.HexID())

	computed := hashfs.Address{Digest: digest.FromString("hello world")}
	assert.Equal(t, computed.Digest.Encoded(), computed.HexID())
	assert.NotContains(t, computed.HexID(), ":")
}
