// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"go.elastic.co/ecszap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajkaijanaho/postfixcalc/internal/util"
)

const logLevelEnvVar = "POSTFIXCALC_LOG_LEVEL"

// InitLogging initializes the global logger. All log output goes to out, which should not be
// the stream results are written to.
func InitLogging(level string, out io.Writer) *zap.Logger {
	if envLevel := os.Getenv(logLevelEnvVar); envLevel != "" {
		level = envLevel
	}

	encoderConf := ecszap.NewDefaultEncoderConfig().ToZapCoreEncoderConfig()
	var encoder zapcore.Encoder

	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		encoderConf.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConf)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConf)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), zap.NewAtomicLevelAt(ParseLevel(level)))

	stackTraceEnabler := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl > zapcore.ErrorLevel
	})
	logger := zap.New(core, zap.AddStacktrace(stackTraceEnabler)).Named(util.AppName)

	zap.ReplaceGlobals(logger)
	zap.RedirectStdLog(logger.Named("stdlog"))

	return logger
}

// ParseLevel converts a level name to a zap level. Unknown names mean info.
// Names of the form Vn map to verbosity levels below debug.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		if strings.HasPrefix(level, "V") {
			if vLevel, err := strconv.Atoi(strings.TrimPrefix(level, "V")); err == nil {
				return zapcore.Level(-vLevel)
			}
		}
	}

	return zapcore.InfoLevel
}
