// Package logging builds the process logger from configuration. Logs go to
// stderr or a file, never to stdout where the session is displayed.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	LevelKey  = "log.level"
	FileKey   = "log.file"
	FormatKey = "log.format"

	DefaultLevel  = "warn"
	DefaultFormat = "text"

	logFileMode = 0o600
	logDirMode  = 0o700
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger configured from cfg and a closer for the log file, if
// one was opened. fallback receives logs when no file is configured.
func New(cfg *viper.Viper, fallback io.Writer) (*logrus.Logger, io.Closer, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	logger := logrus.New()
	logger.SetOutput(fallback)

	levelName := cfg.GetString(LevelKey)
	if levelName == "" {
		levelName = DefaultLevel
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", LevelKey, err)
	}
	logger.SetLevel(level)

	switch format := strings.ToLower(cfg.GetString(FormatKey)); format {
	case "", DefaultFormat:
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, nil, fmt.Errorf("unsupported %s %q", FormatKey, format)
	}

	path := cfg.GetString(FileKey)
	if path == "" {
		return logger, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), logDirMode); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(file)

	return logger, file, nil
}
