package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/nodesignal/boostwatch/pkg/boost"
	"github.com/nodesignal/boostwatch/pkg/config"
	"github.com/nodesignal/boostwatch/pkg/content"
	"github.com/nodesignal/boostwatch/pkg/db"
	"github.com/nodesignal/boostwatch/pkg/notify"
	"github.com/nodesignal/boostwatch/pkg/observer"
	"github.com/nodesignal/boostwatch/pkg/podhome"
	"github.com/nodesignal/boostwatch/pkg/scheduler"
	"github.com/nodesignal/boostwatch/pkg/wallet"
	"github.com/nodesignal/boostwatch/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	color.NoColor = opts.NoColor

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] can't load config: %v", err)
		os.Exit(1)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	setupLog(opts.Debug, cfg.Server.APIToken, cfg.PodHome.APIKey, cfg.Wallet.Token, cfg.Telegram.BotToken)

	log.Printf("[INFO] starting boostwatch version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, debug bool) error {
	policy := boost.ReductionPolicy{
		SatsPerMinute: cfg.Boost.SatoshisPerMinute,
		MaxReduction:  cfg.Boost.MaxReductionHours,
		EarliestTime:  *cfg.Boost.EarliestTime,
		StartTime:     *cfg.Boost.StartTime,
		FinalGoal:     cfg.Boost.FinalGoal,
	}
	if err := policy.Validate(); err != nil {
		return fmt.Errorf("invalid boost policy: %w", err)
	}

	store, err := db.New(ctx, db.Config{
		Mode:            cfg.Database.Mode,
		DSN:             cfg.Database.DSN,
		PostgresDSN:     cfg.Database.PostgresDSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open episode store: %w", err)
	}
	defer store.Close()

	episodes := podhome.New(cfg.PodHome.APIKey, cfg.PodHome.EpisodesURL, cfg.PodHome.RescheduleURL, cfg.PodHome.Timeout)

	obs, err := makeObserver(cfg)
	if err != nil {
		return err
	}

	var notifier scheduler.Notifier
	if cfg.Telegram.Enabled {
		notifier = notify.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Telegram.TopicID)
	}

	monitor := scheduler.NewMonitor(obs, episodes, store, notifier, scheduler.Config{
		Interval:          cfg.Monitor.Interval,
		NotifyThreshold:   cfg.Telegram.Threshold,
		DisplayTimezone:   cfg.Display.Timezone,
		Policy:            policy,
		EmptySnapshotDone: cfg.Monitor.EmptyContentMeansComplete,
	})

	srv := server.New(cfg, store, episodes, revision, debug)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error { return srv.Run(gctx) })

	monitor.Start(gctx)
	err = group.Wait()
	monitor.Stop()

	if err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeObserver builds the donation observer for the configured mode
func makeObserver(cfg *config.Config) (scheduler.Observer, error) {
	switch cfg.Monitor.Mode {
	case config.ModeScrape:
		extractor := content.NewExtractor(cfg.Monitor.Timeout, cfg.Monitor.UserAgent)
		return observer.NewScrape(extractor, cfg.Monitor.URL, cfg.Monitor.MaxRetries, cfg.Monitor.RetryDelay), nil
	case config.ModeWallet:
		client := wallet.New(cfg.Wallet.URL, cfg.Wallet.Token, cfg.Wallet.Timeout)
		return observer.NewWallet(client, cfg.Monitor.MaxRetries, cfg.Monitor.RetryDelay), nil
	}
	return nil, fmt.Errorf("unknown monitor mode %q", cfg.Monitor.Mode)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
