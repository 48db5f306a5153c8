package config

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger はログファイルへ出力するロガーを生成します。
// ログファイルはサイズでローテーションされます。
// verbose の場合はデバッグレベルまで出力し、stderr にも書き出します。
// 返されるio.Closerは呼び出し側で閉じること。
func NewLogger(cfg *Config, verbose bool, stderr io.Writer) (*slog.Logger, io.Closer) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if cfg.LogFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		w, closer = rotator, rotator
	}
	if verbose && stderr != nil {
		w = io.MultiWriter(w, stderr)
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
