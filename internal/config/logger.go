package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

var errLoggerInit = errors.New("failed to initialize logger")

// DefaultLogPath returns the log file in the XDG state directory, creating
// the directory if needed.
func DefaultLogPath() (string, error) {
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// LogPath returns the configured log file, or the default one.
func (c *Config) LogPath() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	return DefaultLogPath()
}

// LogLevel parses the configured level. Unknown levels are info.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// LoggerInit sets up the slog global handler to write to logPath, since
// the terminal belongs to the UI.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	if dir := filepath.Dir(logPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Join(err, errLoggerInit)
		}
	}
	logFile, err := os.Create(logPath)
	if err != nil {
		return nil, errors.Join(err, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))
	slog.SetDefault(logger)

	return logFile, nil
}
