package main

import (
	"StillLife3D/internal/engine"
	"StillLife3D/internal/logger"
	"flag"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "stilllife.json", "path to the scene configuration file")
	flag.Parse()

	logger.Init()
	defer logger.Sync()

	config, err := engine.LoadConfig(*configPath)
	if err != nil {
		logger.Log.Warn("Using default configuration",
			zap.String("path", *configPath),
			zap.Error(err))
	}

	app := engine.New(config)
	if err := app.Run(); err != nil {
		logger.Log.Fatal("Engine exited with error", zap.Error(err))
	}
}
