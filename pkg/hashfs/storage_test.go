package hashfs_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxler/ruafs/pkg/errdefs"
	"github.com/wuxler/ruafs/pkg/hashfs"
)

func TestMakePutOptions(t *testing.T) {
	o := hashfs.MakePutOptions()
	assert.Empty(t, o.Extension)

	o = hashfs.MakePutOptions(hashfs.WithExtension(".txt"))
	assert.Equal(t, ".txt", o.Extension)
}

func TestNopOpener(t *testing.T) {
	ctx := context.Background()
	fs, err := hashfs.New(ctx, hashfs.Config{PathPrefix: "/uploads", RootFolder: "/var/lib/ruafs"},
		hashfs.NopOpener())
	require.NoError(t, err)

	// URL composition works without an engine.
	assert.Equal(t, "/uploads/qux", fs.URLFor("qux"))

	// Every engine operation is rejected.
	_, err = fs.Put(ctx, strings.NewReader("content"))
	assert.ErrorIs(t, err, errdefs.ErrUnavailable)
	_, err = fs.Get(ctx, "id")
	assert.ErrorIs(t, err, errdefs.ErrUnavailable)
	_, err = fs.Open(ctx, "id")
	assert.ErrorIs(t, err, errdefs.ErrUnavailable)
	assert.ErrorIs(t, fs.Delete(ctx, "id"), errdefs.ErrUnavailable)
}
