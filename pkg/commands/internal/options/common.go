// Package options defines the shared flag groups commands compose.
package options

import (
	"github.com/urfave/cli/v3"

	"github.com/wuxler/ruafs/pkg/xlog"
)

// NewCommon returns a *Common with default values.
func NewCommon() *Common {
	return &Common{}
}

// Common are options that are common to all commands.
type Common struct {
	Debug bool `json:"debug,omitempty" yaml:"debug,omitempty"`
}

// Flags returns the []cli.Flag related to current options.
func (o *Common) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "debug",
			Aliases:     []string{"d"},
			Sources:     cli.EnvVars("RUAFS_DEBUG"),
			Usage:       "enable debug logging",
			Value:       o.Debug,
			Destination: &o.Debug,
		},
	}
}

// Apply applies the options to the process-wide state.
func (o *Common) Apply() {
	if o.Debug {
		xlog.SetLevel(xlog.LevelDebug)
	}
}
