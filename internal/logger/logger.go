package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config mirrors config.LogConfig but avoids importing the config package here.
type Config struct {
	Level    string
	Encoding string
	Output   string // "stderr" or a file path
}

// New builds a zap.Logger using the provided configuration.
// Logs never go to stdout: the REPL and the MCP stdio transport own it.
// The returned close func flushes the logger and releases a file sink.
func New(cfg Config) (*zap.Logger, func(), error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	// Level.Set accepts "" as info, so an unset level is handled here
	level := zapcore.WarnLevel
	if cfg.Level != "" {
		if err := level.Set(cfg.Level); err != nil {
			level = zapcore.WarnLevel
		}
	}

	var encoder zapcore.Encoder
	switch cfg.Encoding {
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	default:
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	sink, closeSink, err := openSink(cfg.Output)
	if err != nil {
		return nil, nil, err
	}

	l := zap.New(zapcore.NewCore(encoder, sink, level), zap.AddCaller())
	return l, func() {
		_ = l.Sync()
		closeSink()
	}, nil
}

func openSink(output string) (zapcore.WriteSyncer, func(), error) {
	if output == "" || output == "stderr" {
		return zapcore.Lock(os.Stderr), func() {}, nil
	}

	f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return zapcore.Lock(f), func() { _ = f.Close() }, nil
}
