// Package logging provides the console and log-file logger shared by the
// command line and the resolution engine.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Options configures a Logger.
type Options struct {
	// Console receives human-readable output. Nil disables it.
	Console io.Writer
	// Debug lowers the console level from info to debug.
	Debug bool
	// FilePath, when set, appends JSON events at debug level to that file.
	FilePath string
	// FileLimit truncates an existing log file larger than this many bytes
	// instead of appending to it. Zero means no limit.
	FileLimit int64
}

// DefaultFileLimit caps log growth for runs launched from a file manager.
const DefaultFileLimit = 512 * 1024

// Logger wraps zerolog with a console writer and an optional log file.
type Logger struct {
	zlog zerolog.Logger
	file *os.File
}

// New builds a Logger. The log file and its directory are created as needed.
func New(opts Options) (*Logger, error) {
	consoleLevel := zerolog.InfoLevel
	if opts.Debug {
		consoleLevel = zerolog.DebugLevel
	}

	var writers []io.Writer
	if opts.Console != nil {
		writers = append(writers, &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: zerolog.ConsoleWriter{
				Out:        opts.Console,
				TimeFormat: "15:04:05",
			}},
			Level: consoleLevel,
		})
	}

	l := &Logger{}
	if opts.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		flag := os.O_CREATE | os.O_WRONLY | os.O_APPEND
		if info, err := os.Stat(opts.FilePath); err == nil && opts.FileLimit > 0 && info.Size() > opts.FileLimit {
			flag |= os.O_TRUNC
		}
		f, err := os.OpenFile(opts.FilePath, flag, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", opts.FilePath, err)
		}
		l.file = f
		writers = append(writers, f)
	}

	if len(writers) == 0 {
		l.zlog = zerolog.Nop()
		return l, nil
	}
	l.zlog = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
	return l, nil
}

// NewConsole returns a console-only logger on stderr.
func NewConsole(debug bool) *Logger {
	l, _ := New(Options{Console: os.Stderr, Debug: debug})
	return l
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Zerolog exposes the underlying logger.
func (l *Logger) Zerolog() *zerolog.Logger { return &l.zlog }

// Debug returns a debug level event.
func (l *Logger) Debug() *zerolog.Event { return l.zlog.Debug() }

// Info returns an info level event.
func (l *Logger) Info() *zerolog.Event { return l.zlog.Info() }

// Warn returns a warn level event.
func (l *Logger) Warn() *zerolog.Event { return l.zlog.Warn() }

// Error returns an error level event.
func (l *Logger) Error() *zerolog.Event { return l.zlog.Error() }

// Debugf logs a debug message with printf-style formatting.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.zlog.Debug().Msgf(format, args...)
}

// Infof logs an info message with printf-style formatting.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.zlog.Info().Msgf(format, args...)
}

// Warnf logs a warning message with printf-style formatting.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.zlog.Warn().Msgf(format, args...)
}

// Errorf logs an error message with printf-style formatting.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.zlog.Error().Msgf(format, args...)
}

// Stage records one resolution step: the stage name, the Windows target
// and the POSIX candidate, if any.
func (l *Logger) Stage(stage, win, lin string) {
	e := l.zlog.Debug().Str("stage", stage).Str("win", win)
	if lin != "" {
		e = e.Str("lin", lin)
	}
	e.Msg("resolve")
}
