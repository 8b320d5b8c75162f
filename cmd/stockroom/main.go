package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/storeware/stockroom/config"
	"github.com/storeware/stockroom/internal/app"
	"github.com/storeware/stockroom/internal/inventory"
	"github.com/storeware/stockroom/internal/storeapi"
	"github.com/storeware/stockroom/internal/webserver"
	"go.uber.org/zap"
)

var (
	conffile = flag.String("c", "stockroom.yml", "config file")
	dev      = flag.Bool("x", false, "enable debug mode")
	initdb   = flag.Bool("initdb", false, "drop and recreate the database schema, then exit")
	showVer  = flag.Bool("v", false, "print version and exit")
)

var version = "dev"

func main() {
	flag.Parse()
	if *showVer {
		fmt.Println("stockroom", version)
		return
	}

	_ = godotenv.Load()

	cfg := config.LoadConfig(*conffile)
	if *dev {
		cfg.System.Debug = true
	}

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initdb {
		application.InitDb()
		zap.S().Info("database schema recreated")
		return
	}

	repo := inventory.NewGormProductRepository(application.DB())
	server := webserver.Init(cfg)
	storeapi.NewAPI(cfg, repo).RegisterRoutes()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		application.Release()
		os.Exit(0)
	}()

	if err := server.Listen(); err != nil {
		zap.S().Fatal(err)
	}
}
