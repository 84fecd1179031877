package main

import (
	"github.com/plakhov/taskboard/internal/config"
	"github.com/plakhov/taskboard/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
