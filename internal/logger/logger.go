// Package logger provides the process wide zap logger.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitWriter installs a console logger writing to w at level as zap's
// global logger.
func InitWriter(level string, w io.Writer) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(zapcore.AddSync(w)), lvl)
	zap.ReplaceGlobals(zap.New(core))
	return nil
}

// Logger returns the global sugared logger. It discards everything until
// Init was called.
func Logger() *zap.SugaredLogger {
	return zap.S()
}
