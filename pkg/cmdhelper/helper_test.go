package cmdhelper_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/ruafs/pkg/cmdhelper"
)

func runCommand(t *testing.T, before cli.BeforeFunc, args ...string) error {
	t.Helper()
	command := &cli.Command{
		Name:   "test",
		Before: before,
		Action: func(_ context.Context, _ *cli.Command) error { return nil },
	}
	return command.Run(context.Background(), append([]string{"test"}, args...))
}

func TestNoArgs(t *testing.T) {
	before := cmdhelper.BeforeFunc(cmdhelper.NoArgs())
	assert.NoError(t, runCommand(t, before))
	assert.Error(t, runCommand(t, before, "extra"))
}

func TestExactArgs(t *testing.T) {
	before := cmdhelper.BeforeFunc(cmdhelper.ExactArgs(2))
	assert.NoError(t, runCommand(t, before, "a", "b"))
	assert.Error(t, runCommand(t, before, "a"))
	assert.Error(t, runCommand(t, before, "a", "b", "c"))
}

func TestMinimumNArgs(t *testing.T) {
	before := cmdhelper.BeforeFunc(cmdhelper.MinimumNArgs(1))
	assert.Error(t, runCommand(t, before))
	assert.NoError(t, runCommand(t, before, "a"))
	assert.NoError(t, runCommand(t, before, "a", "b"))
}

func TestBeforeFunc_StopsAtFirstFailure(t *testing.T) {
	reached := false
	before := cmdhelper.BeforeFunc(
		cmdhelper.ExactArgs(1),
		func(_ context.Context, _ *cli.Command) error {
			reached = true
			return nil
		},
	)
	assert.Error(t, runCommand(t, before))
	assert.False(t, reached)

	assert.NoError(t, runCommand(t, before, "a"))
	assert.True(t, reached)
}

func TestFprintf(t *testing.T) {
	buf := &bytes.Buffer{}
	cmdhelper.Fprintf(buf, "value is %d", 42)
	assert.Equal(t, "value is 42\n", buf.String())

	buf.Reset()
	cmdhelper.Fprintf(buf, "already terminated\n")
	assert.Equal(t, "already terminated\n", buf.String())
}

func TestPrettifyJSON(t *testing.T) {
	pretty, err := cmdhelper.PrettifyJSON(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(pretty))

	pretty, err = cmdhelper.PrettifyJSON(`{"a":1}`)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(pretty))

	_, err = cmdhelper.PrettifyJSON("not json")
	assert.Error(t, err)
}
