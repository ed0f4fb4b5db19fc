// Command dequedemo pushes a list of jobs through a worker pool backed by a
// concurrent deque and reports what each worker did.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/juju/errors"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/dmitrorezn/gocommon/concurrent"
	"github.com/dmitrorezn/gocommon/strutil"
	"github.com/dmitrorezn/gocommon/workpool"
)

type job struct {
	ID   uuid.UUID
	Name string
}

func main() {
	if err := mainImpl(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "dequedemo: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	configPath := flag.String("config", "", "JSON config file with Workers and Items entries")
	workers := flag.Int("workers", 0, "Number of workers (overrides config)")
	items := flag.String("items", "", "Comma separated job names (overrides config)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()
	if len(flag.Args()) > 0 {
		return errors.Errorf("unknown arguments: %v", flag.Args())
	}

	slog.SetDefault(initLogger(*logLevel))

	cfg := NewCfg()
	if *configPath != "" {
		loaded, err := LoadCfg(*configPath)
		if err != nil {
			return errors.Trace(err)
		}
		cfg = loaded
	}
	if *workers > 0 {
		cfg = cfg.WithWorkers(*workers)
	}
	if *items != "" {
		cfg = cfg.WithItems(strutil.Split(*items, ','))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return run(ctx, cfg)
}

func run(ctx context.Context, cfg Cfg) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if len(cfg.Items) == 0 {
		slog.Warn("no items to process")
		return nil
	}

	done := concurrent.NewHashSet[uuid.UUID](concurrent.WithPresize(len(cfg.Items)))
	perName := concurrent.NewHashMap[string, int]()
	pool := workpool.New(func(ctx context.Context, j job) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cfg.Delay):
		}
		perName.Update(j.Name, func(old int, _ bool) int {
			return old + 1
		})
		if done.Add(j.ID) && done.Len() == len(cfg.Items) {
			cancel()
		}

		return nil
	}, workpool.WithWorkers[job](cfg.Workers))

	for _, name := range cfg.Items {
		pool.Submit(job{ID: uuid.New(), Name: name})
	}

	slog.Info("STARTED", "workers", cfg.Workers, "items", len(cfg.Items))
	defer slog.Info("STOPPED")

	if err := pool.Run(ctx); err != nil {
		return errors.Trace(err)
	}
	perName.Range(func(name string, n int) bool {
		slog.Info("processed", "name", name, "count", n)

		return true
	})
	if left := pool.Pending(); left > 0 {
		return errors.Annotatef(context.Canceled, "%d items left unprocessed", left)
	}

	return nil
}

func initLogger(level string) *slog.Logger {
	ll := &slog.LevelVar{}
	switch level {
	case "debug":
		ll.Set(slog.LevelDebug)
	case "warn":
		ll.Set(slog.LevelWarn)
	case "error":
		ll.Set(slog.LevelError)
	default:
		ll.Set(slog.LevelInfo)
	}

	return slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
}
