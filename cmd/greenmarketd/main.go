package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/greenstall/greenmarket/config"
	"github.com/greenstall/greenmarket/internal/app"
	"github.com/greenstall/greenmarket/internal/carousel"
	"github.com/greenstall/greenmarket/internal/imagestore"
	"github.com/greenstall/greenmarket/internal/marketapi"
	"github.com/greenstall/greenmarket/internal/webserver"
)

var (
	configFile = flag.String("c", "greenmarket.yml", "config file")
	initDb     = flag.Bool("initdb", false, "drop and recreate all tables, then exit")
	showVer    = flag.Bool("v", false, "print version and exit")
)

var version = "dev"

func main() {
	flag.Parse()
	if *showVer {
		fmt.Println("greenmarketd", version)
		return
	}

	cfg := config.LoadConfig(*configFile)
	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initDb {
		application.InitDb()
		zap.S().Info("database initialized")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := webserver.Init(application)
	marketapi.InitRouter(imagestore.New(cfg.GetUploadDir()))

	// Landing-view carousel: reshuffle the stored images on a fixed period.
	images, _ := imagestore.New(cfg.GetUploadDir()).List()
	interval := time.Duration(application.GetSettingsInt64Value("carousel", "interval_seconds")) * time.Second
	count := int(application.GetSettingsInt64Value("carousel", "image_count"))
	wheel := carousel.New(images, interval, count, application.Bus())
	wheel.Start(ctx)
	defer wheel.Stop()

	application.StartBackgroundJobs(ctx)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Root().Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zap.S().Errorf("server exited: %v", err)
	}
}
