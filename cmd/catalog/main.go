package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talkincode/catalog/config"
	"github.com/talkincode/catalog/internal/app"
	"github.com/talkincode/catalog/internal/catalogapi"
	"github.com/talkincode/catalog/internal/webserver"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	BuildVersion = "develop"
)

var (
	h        = flag.Bool("h", false, "help usage")
	showVer  = flag.Bool("v", false, "show version")
	conffile = flag.String("c", "", "config yaml file")
	initdb   = flag.Bool("initdb", false, "create the schema and exit")
	seed     = flag.Bool("seed", false, "insert demo products when the catalog is empty")
)

const shutdownTimeout = 10 * time.Second

type runOptions struct {
	InitDB bool
	Seed   bool
}

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println(BuildVersion)
		os.Exit(0)
	}

	if *h {
		flag.Usage()
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(*conffile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, app.NewApplication(cfg), runOptions{InitDB: *initdb, Seed: *seed})
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "catalog:", err)
		os.Exit(1)
	}
}

// run initializes the application and serves until ctx is cancelled. The
// application is always released before run returns.
func run(ctx context.Context, application *app.Application, opts runOptions) error {
	defer application.Release()
	if err := application.Init(); err != nil {
		zap.S().Errorf("application init failed: %v", err)
		return err
	}

	if opts.InitDB {
		zap.S().Info("database schema initialized")
		return nil
	}

	if opts.Seed {
		if err := application.SeedDemoProducts(ctx); err != nil {
			zap.S().Errorf("seed demo products failed: %v", err)
			return err
		}
	}

	srv := webserver.NewServer(application.Config())
	catalogapi.Register(srv, application.Products(), time.Now)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		zap.S().Info("shutting down web server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zap.S().Errorf("web server stopped: %v", err)
		return err
	}
	return nil
}
