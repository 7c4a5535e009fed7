package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// PrepareLog creates console logger according to configuration. debug overwrites configured level.
func (conf *Config) PrepareLog(debug bool) (*zap.Logger, error) {

	level := conf.Logging.Level
	if debug {
		level = LogDebug
	}

	var enabler zapcore.LevelEnabler
	switch level {
	case LogNone:
		return zap.NewNop(), nil
	case LogNormal:
		enabler = zap.InfoLevel
	case LogDebug:
		enabler = zap.DebugLevel
	default:
		return nil, fmt.Errorf("unknown logging level %q", level)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.TimeKey = ""
	if EnableColorOutput(os.Stderr) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	if level != LogDebug {
		ec.CallerKey = ""
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), enabler)
	opts := []zap.Option{}
	if level == LogDebug {
		opts = append(opts, zap.AddCaller(), zap.Development())
	}
	return zap.New(core, opts...), nil
}
