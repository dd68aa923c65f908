package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cssb/misc"
)

type LoggerConfig struct {
	Level       string `yaml:"level"`
	Destination string `yaml:"destination,omitempty"`
	Mode        string `yaml:"mode,omitempty"`
}

type LoggingConfig struct {
	FileLogger    LoggerConfig `yaml:"file"`
	ConsoleLogger LoggerConfig `yaml:"console"`
}

func (conf *LoggingConfig) validate() error {
	levels := []string{"", "none", "normal", "debug"}
	if !slices.Contains(levels, conf.ConsoleLogger.Level) {
		return fmt.Errorf("unknown console log level '%s'", conf.ConsoleLogger.Level)
	}
	if !slices.Contains(levels, conf.FileLogger.Level) {
		return fmt.Errorf("unknown file log level '%s'", conf.FileLogger.Level)
	}
	if !slices.Contains([]string{"", "append", "overwrite"}, conf.FileLogger.Mode) {
		return fmt.Errorf("unknown file log mode '%s'", conf.FileLogger.Mode)
	}
	if conf.FileLogger.Level == "normal" || conf.FileLogger.Level == "debug" {
		if len(conf.FileLogger.Destination) == 0 {
			return fmt.Errorf("file logging requested without destination")
		}
	}
	return nil
}

// Prepare returns our standard logger - configured zap logger for use by the
// program. Console output is split: info and below to stdout, errors to
// stderr, colorized when the stream is a terminal.
func (conf *LoggingConfig) Prepare() (*zap.Logger, error) {

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if EnableColorOutput(os.Stdout) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	consoleEncoderLP := zapcore.NewConsoleEncoder(ec)

	ec = zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if EnableColorOutput(os.Stderr) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	consoleEncoderHP := zapcore.NewConsoleEncoder(ec)

	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	var consoleCoreHP, consoleCoreLP zapcore.Core
	switch conf.ConsoleLogger.Level {
	case "normal":
		consoleCoreLP = zapcore.NewCore(consoleEncoderLP, zapcore.Lock(os.Stdout),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return zapcore.InfoLevel <= lvl && lvl < zapcore.ErrorLevel
			}))
		consoleCoreHP = zapcore.NewCore(consoleEncoderHP, zapcore.Lock(os.Stderr), highPriority)
	case "debug":
		consoleCoreLP = zapcore.NewCore(consoleEncoderLP, zapcore.Lock(os.Stdout),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return zapcore.DebugLevel <= lvl && lvl < zapcore.ErrorLevel
			}))
		consoleCoreHP = zapcore.NewCore(consoleEncoderHP, zapcore.Lock(os.Stderr), highPriority)
	default:
		consoleCoreLP = zapcore.NewNopCore()
		consoleCoreHP = zapcore.NewNopCore()
	}

	fileCore := zapcore.NewNopCore()
	switch conf.FileLogger.Level {
	case "normal", "debug":
		flags := os.O_CREATE | os.O_WRONLY
		if conf.FileLogger.Mode == "append" {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		if err := os.MkdirAll(filepath.Dir(conf.FileLogger.Destination), 0755); err != nil {
			return nil, fmt.Errorf("unable to prepare file log destination (%s): %w", conf.FileLogger.Destination, err)
		}
		f, err := os.OpenFile(conf.FileLogger.Destination, flags, 0644)
		if err != nil {
			return nil, fmt.Errorf("unable to access file log destination (%s): %w", conf.FileLogger.Destination, err)
		}
		level := zap.InfoLevel
		if conf.FileLogger.Level == "debug" {
			level = zap.DebugLevel
		}
		fileCore = zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.Lock(f),
			zap.NewAtomicLevelAt(level))
	}

	core := zap.New(zapcore.NewTee(consoleCoreHP, consoleCoreLP, fileCore), zap.AddCaller())
	return core.Named(misc.GetAppName()), nil
}
