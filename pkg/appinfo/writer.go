package appinfo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wuxler/ruafs/pkg/errdefs"
)

// NewVersionWriter returns a *VersionWriter rendering v.
func NewVersionWriter(v Version) *VersionWriter {
	return &VersionWriter{
		version: v,
	}
}

// VersionWriter renders a Version in one of the supported output formats.
type VersionWriter struct {
	version Version

	short   bool
	format  string
	appName string
}

// SetShort is a chain method to set the short option.
func (vw *VersionWriter) SetShort(short bool) *VersionWriter {
	vw.short = short
	return vw
}

// SetFormat is a chain method to set the format option.
func (vw *VersionWriter) SetFormat(format string) *VersionWriter {
	vw.format = format
	return vw
}

// SetAppName is a chain method to set the application name option.
func (vw *VersionWriter) SetAppName(name string) *VersionWriter {
	vw.appName = name
	return vw
}

// Write renders the version into w. The format is one of "text" (default),
// "json", "yaml"; anything else is rejected.
func (vw VersionWriter) Write(w io.Writer) error {
	switch strings.ToLower(vw.format) {
	case "", "text":
		if vw.short {
			_, err := fmt.Fprintln(w, vw.ShortLine())
			return err
		}
		_, err := io.WriteString(w, vw.Extended())
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(vw.version)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(vw.version); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errdefs.Newf(errdefs.ErrUnsupported, "unknown output format %q", vw.format)
	}
}

// ShortLine returns the one-line version string.
func (vw VersionWriter) ShortLine() string {
	s := vw.version.Version
	if vw.version.Git.Commit != "" {
		s += " (" + vw.version.Git.Commit + ")"
	}
	return s
}

// Extended returns the multi-line version string.
func (vw VersionWriter) Extended() string {
	v := vw.version
	sb := &strings.Builder{}
	if vw.appName != "" {
		fmt.Fprintf(sb, "Application  : %s\n", vw.appName)
	}
	fmt.Fprintf(sb, "Version      : %s\n", v.Version)
	fmt.Fprintf(sb, "[Git]\n")
	fmt.Fprintf(sb, "  Branch     : %s\n", v.Git.Branch)
	fmt.Fprintf(sb, "  Commit     : %s\n", v.Git.Commit)
	fmt.Fprintf(sb, "  Tag        : %s\n", v.Git.Tag)
	fmt.Fprintf(sb, "  TreeState  : %s\n", v.Git.TreeState)
	fmt.Fprintf(sb, "[Build]\n")
	fmt.Fprintf(sb, "  BuildDate  : %s\n", v.Build.BuildDate)
	fmt.Fprintf(sb, "  GoVersion  : %s\n", v.Build.GoVersion)
	fmt.Fprintf(sb, "  Compiler   : %s\n", v.Build.Compiler)
	fmt.Fprintf(sb, "  Platform   : %s\n", v.Build.Platform)
	return sb.String()
}
