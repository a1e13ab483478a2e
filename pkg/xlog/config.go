package xlog

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewConfig returns the default logging configuration: text output on
// stdout at LevelInfo with source locations, no file output.
func NewConfig() Config {
	return Config{
		Level:        slog.LevelInfo,
		AddSource:    true,
		AttrReplacer: NormalizeSourceAttrReplacer(),
		Format:       "text",
		Writer:       os.Stdout,
		MaxSize:      30,
	}
}

// Config declares how log records are formatted and where they go.
type Config struct {
	// Level is the minimum level emitted.
	Level slog.Level
	// AddSource includes the file and line of the logging call.
	AddSource bool
	// AttrReplacer rewrites attributes before they are emitted.
	AttrReplacer AttrReplacer

	// Format is the console output format, one of "text" or "json".
	Format string
	// Writer is the console output destination, os.Stdout when unset.
	Writer io.Writer

	// Path is the log file path. Empty disables file output. File records
	// are always written as JSON and rotated by lumberjack.
	Path string
	// MaxSize is the maximum size of a single log file in MB before it is
	// rotated.
	MaxSize int
	// MaxAge is the number of days rotated files are retained, 0 keeps all.
	MaxAge int
	// MaxBackups is the number of rotated files retained, 0 keeps all.
	MaxBackups int
	// Compress enables gzip compression of rotated files.
	Compress bool
}

// BuildHandler creates a slog.Handler from the config.
func (c *Config) BuildHandler() slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource:   c.AddSource,
		Level:       c.Level,
		ReplaceAttr: c.AttrReplacer,
	}
	writer := c.Writer
	if writer == nil {
		writer = os.Stdout
	}

	if c.Format == "json" {
		if fw := c.fileWriter(); fw != nil {
			writer = io.MultiWriter(writer, fw)
		}
		return NewLeveledHandlerCreator(JSONHandlerCreator)(writer, opts)
	}

	handlers := []slog.Handler{
		NewLeveledHandlerCreator(TextHandlerCreator)(writer, opts),
	}
	if fw := c.fileWriter(); fw != nil {
		handlers = append(handlers, NewLeveledHandlerCreator(JSONHandlerCreator)(fw, opts))
	}
	return MultiHandler(handlers...)
}

func (c *Config) fileWriter() io.Writer {
	if c.Path == "" {
		return nil
	}
	return &lumberjack.Logger{
		Filename:   c.Path,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxAge,
		MaxBackups: c.MaxBackups,
		Compress:   c.Compress,
	}
}
