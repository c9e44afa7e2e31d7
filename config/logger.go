package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vinayakagude/chimes/internal/osutil"
)

// InitLogger points the default slog logger at a rotating log file in the
// data directory. The terminal stays reserved for pterm and the watch view.
func InitLogger() error {
	err := os.MkdirAll(filepath.Dir(logFilePath), osutil.DirPermission)
	if err != nil {
		return err
	}

	w := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	slog.SetDefault(slog.New(handler))

	return nil
}
