package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katiamach/hivebox/internal/api"
	"github.com/katiamach/hivebox/internal/config"
	"github.com/katiamach/hivebox/internal/logger"
	"github.com/katiamach/hivebox/internal/version"
)

func main() {
	printVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(version.Version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load config: %v", err))
	}

	err = logger.SetLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = api.RunAPI(ctx, cfg)
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run hivebox api: %v", err))
	}
}
