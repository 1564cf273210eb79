package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a no-op until Init enables debug output, so commands write
// nothing to stderr unless asked to.
var Logger = zap.NewNop()

// Init replaces Logger. With debug off the logger stays silent; with debug
// on it writes development-encoded entries to stderr.
func Init(debug bool) error {
	if !debug {
		Logger = zap.NewNop()
		return nil
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.MessageKey = "message"

	l, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return err
	}
	Logger = l
	return nil
}

// Sync flushes buffered entries.
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
