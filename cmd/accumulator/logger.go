// logger.go - structured logging for the accumulator CLI
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps three zerolog sinks: a human-readable console writer, an
// optional newline-delimited-JSON file sink, and an optional audit sink that
// receives warning-and-above events plus the events passed to Audit. This
// mirrors the teacher's
// console/fileLog/auditLog split, upgraded from stdlib log.Logger to
// zerolog's structured event API.
type Logger struct {
	level    zerolog.Level
	console  zerolog.Logger
	file     *os.File
	fileLog  *zerolog.Logger
	auditLog *zerolog.Logger
}

// NewLogger builds a Logger writing at level to stdout, and additionally to
// logFile and auditFile when non-empty.
func NewLogger(level string, logFile string, auditFile string) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	console := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).
		Level(lvl).With().Timestamp().Logger()

	logger := &Logger{level: lvl, console: console}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.file = f
		fileLogger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
		logger.fileLog = &fileLogger
	}

	if auditFile != "" {
		af, err := os.OpenFile(auditFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open audit file: %w", err)
		}
		auditLogger := zerolog.New(af).Level(zerolog.WarnLevel).With().Timestamp().Logger()
		logger.auditLog = &auditLogger
	}

	return logger, nil
}

// Close releases the underlying log file handle, if one was opened.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	emit(l.console.Debug(), msg, fields)
	if l.fileLog != nil {
		emit(l.fileLog.Debug(), msg, fields)
	}
}

// Info logs at info level.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	emit(l.console.Info(), msg, fields)
	if l.fileLog != nil {
		emit(l.fileLog.Info(), msg, fields)
	}
}

// Warn logs at warn level and mirrors to the audit sink.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	emit(l.console.Warn(), msg, fields)
	if l.fileLog != nil {
		emit(l.fileLog.Warn(), msg, fields)
	}
	if l.auditLog != nil {
		emit(l.auditLog.Warn(), msg, fields)
	}
}

// Error logs at error level and mirrors to the audit sink.
func (l *Logger) Error(msg string, err error, fields map[string]interface{}) {
	ev := l.console.Error()
	if err != nil {
		ev = ev.Err(err)
	}
	emit(ev, msg, fields)
	if l.fileLog != nil {
		ev := l.fileLog.Error()
		if err != nil {
			ev = ev.Err(err)
		}
		emit(ev, msg, fields)
	}
	if l.auditLog != nil {
		ev := l.auditLog.Error()
		if err != nil {
			ev = ev.Err(err)
		}
		emit(ev, msg, fields)
	}
}

// Fatal logs at error level and exits the process with code 1, matching the
// teacher's Logger.Fatal behavior.
func (l *Logger) Fatal(msg string, err error, fields map[string]interface{}) {
	l.Error(msg, err, fields)
	l.Close()
	os.Exit(1)
}

// Audit records an event to the audit sink only, for events worth keeping a
// trail of even when they are not warnings or errors (e.g. a successful
// add_element).
func (l *Logger) Audit(event string, fields map[string]interface{}) {
	if l.auditLog == nil {
		return
	}
	auditInfo := l.auditLog.Level(zerolog.InfoLevel)
	emit(auditInfo.Info().Str("event", event), "", fields)
}

func emit(ev *zerolog.Event, msg string, fields map[string]interface{}) {
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
