package xlog_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wuxler/ruafs/pkg/xlog"
)

func newTestConfig(w *bytes.Buffer) xlog.Config {
	c := xlog.NewConfig()
	c.AttrReplacer = xlog.ChainReplacer(
		xlog.NormalizeSourceAttrReplacer(),
		xlog.SuppressTimeAttrReplacer(),
	)
	c.Writer = w
	return c
}

func TestLogger_SetLevel(t *testing.T) {
	stdout := &bytes.Buffer{}
	xlog.SetDefault(xlog.New(newTestConfig(stdout)))

	xlog.Debug("dropped below level", "attr1", "val1")
	xlog.SetLevel(xlog.LevelDebug)
	xlog.Debug("emitted after SetLevel", "attr1", "val1")
	xlog.Debugf("emitted with format: %s", "hello")

	got := stdout.String()
	want := strings.TrimLeft(`
level=DEBUG source=logger_test.go:32 msg="emitted after SetLevel" attr1=val1
level=DEBUG source=logger_test.go:33 msg="emitted with format: hello"
`, "\n")

	assert.Equal(t, want, got)
}

func TestLogger_With(t *testing.T) {
	stdout := &bytes.Buffer{}
	c := newTestConfig(stdout)
	c.AddSource = false

	logger := xlog.New(c).With("component", "storage")
	logger.Info("ready")

	assert.Equal(t, "level=INFO msg=ready component=storage\n", stdout.String())
}

func TestLogger_FileHandler(t *testing.T) {
	stdout := &bytes.Buffer{}
	c := newTestConfig(stdout)
	c.Path = filepath.Join(t.TempDir(), "ruafs.log")

	logger := xlog.New(c)
	logger.Info("to console and file")
	logger.Debug("below level everywhere")

	assert.Contains(t, stdout.String(), `msg="to console and file"`)

	data, err := os.ReadFile(c.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to console and file"`)
	assert.NotContains(t, string(data), "below level everywhere")
}

func TestFromContext(t *testing.T) {
	stdout := &bytes.Buffer{}
	c := newTestConfig(stdout)
	c.AddSource = false
	xlog.SetDefault(xlog.New(c))

	ctx := xlog.WithContext(context.Background(), "request", "abc123")
	xlog.C(ctx).Info("handled")

	assert.Equal(t, "level=INFO msg=handled request=abc123\n", stdout.String())
}
