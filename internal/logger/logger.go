package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New. Console output goes to Out, which defaults to
// stderr because stdout carries the chart.
type Options struct {
	Level string
	File  string
	Out   io.Writer
}

// New builds a console logger, teeing to a rotating file when File is set.
func New(opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    false,
		FormatLevel: func(i interface{}) string {
			level := strings.ToUpper(fmt.Sprintf("%s", i))
			switch level {
			case "DEBUG":
				return "[DBG]"
			case "INFO":
				return "[INF]"
			case "WARN":
				return "[WRN]"
			case "ERROR":
				return "[ERR]"
			case "FATAL":
				return "[FTL]"
			default:
				if len(level) > 3 {
					level = level[:3]
				}
				return fmt.Sprintf("[%s]", level)
			}
		},
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("%v", i)
		},
	}

	var w io.Writer = consoleWriter
	if opts.File != "" {
		rotatingLogFile := &lumberjack.Logger{
			Filename: opts.File,
			MaxSize:  10,
			MaxAge:   15,
			Compress: true,
		}
		fileWriter := zerolog.ConsoleWriter{
			Out:        rotatingLogFile,
			TimeFormat: "2006-01-02 15:04:05",
			NoColor:    true,
			FormatLevel: func(i interface{}) string {
				return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
			},
			FormatMessage: func(i interface{}) string {
				return fmt.Sprintf("%v", i)
			},
		}
		w = zerolog.MultiLevelWriter(consoleWriter, fileWriter)
	}

	return zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(ParseLevel(opts.Level))
}

// ParseLevel maps a level name to a zerolog level, defaulting to warn so a
// healthy stream keeps the terminal quiet.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
