package xlog

import "log/slog"

// Attr is an alias of slog.Attr to save callers an extra import.
type Attr = slog.Attr

// Level is an alias of slog.Level.
type Level = slog.Level

// Aliases of the standard slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// NewLevelVar returns a *slog.LevelVar initialized to lvl.
func NewLevelVar(lvl slog.Level) *slog.LevelVar {
	v := &slog.LevelVar{}
	v.Set(lvl)
	return v
}
