package main

import (
	"flag"
	"log"
	"os"

	"github.com/storalia/bodega/internal/app"
	"github.com/storalia/bodega/internal/config"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file (env BODEGA_CONFIG overrides the default)")
	flag.Parse()

	path := *configPath
	if path == defaultConfigPath {
		if env := os.Getenv("BODEGA_CONFIG"); env != "" {
			path = env
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatal("failed to create app: ", err)
	}

	if err := a.Run(); err != nil {
		log.Fatal("server error: ", err)
	}
}
