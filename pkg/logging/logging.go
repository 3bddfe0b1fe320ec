// Package logging builds the application's zap logger.
package logging

import (
	"go.uber.org/zap"
)

// Setup constructs a logger tagged with the application identity. With
// debug enabled it uses the development config, which surfaces the
// per-file Debug decisions the pack pipeline emits.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"app":     appName,
		"version": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}
