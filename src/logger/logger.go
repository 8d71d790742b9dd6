package logger

import (
	"os"
	"strings"

	"github.com/BielosX/wombat/pokedex/src/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the SugaredLogger shared by every component. Development mode keeps the
// console output the Lambda logs have always used; otherwise JSON lines are written.
// Both modes log to stderr, stdout carries command output only.
func New(cfg *config.Config) (*zap.SugaredLogger, error) {
	level := parseLevel(cfg.LogLevel)
	if cfg.LogDevelopment {
		devCfg := zap.NewDevelopmentConfig()
		devCfg.Level = zap.NewAtomicLevelAt(level)
		logger, err := devCfg.Build(zap.AddStacktrace(zap.FatalLevel))
		if err != nil {
			return nil, err
		}
		return logger.Sugar(), nil
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).Sugar(), nil
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
