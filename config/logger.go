package config

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

var Log *zap.SugaredLogger

func InitLogger() {
	var cfg zap.Config
	switch strings.ToLower(os.Getenv("APP_ENV")) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	Log = logger.Sugar()
}

func init() {
	// tests and helpers may touch Log before main wires it up
	Log = zap.NewNop().Sugar()
}
