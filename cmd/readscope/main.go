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

	"github.com/umputun/readscope/pkg/config"
	"github.com/umputun/readscope/pkg/domain"
	"github.com/umputun/readscope/pkg/engagement"
	"github.com/umputun/readscope/pkg/recommend"
	"github.com/umputun/readscope/pkg/repository"
	"github.com/umputun/readscope/pkg/scheduler"
	"github.com/umputun/readscope/pkg/source"
	"github.com/umputun/readscope/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file"`

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

	setupLog(opts.Debug, opts.NoColor)

	log.Printf("[INFO] starting readscope version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] readscope failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the application together and blocks until the context is
// cancelled or the server fails
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if cerr := repos.Close(); cerr != nil {
			log.Printf("[WARN] failed to close database: %v", cerr)
		}
	}()

	forums := make(map[string]string, len(cfg.Sources))
	for _, src := range cfg.Sources {
		forums[src.ID] = src.FeedURL
	}
	if err := repos.SeedForums(ctx, forums); err != nil {
		return fmt.Errorf("failed to seed forums: %w", err)
	}

	engine := recommend.NewEngine(NewRecommendStore(repos), repos.Click)

	defaults := domain.Thresholds{
		Seconds:   cfg.Engagement.ThresholdSeconds,
		ScrollPct: cfg.Engagement.ThresholdScrollPct,
	}
	sessions := engagement.NewSessionManager(repos.Session, cfg.Engagement.SessionTimeout)
	tracker := engagement.NewTracker(repos.Thread, repos.Event, repos.Setting, sessions, defaults)

	fetcher := source.NewFeedAdapter(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)
	srcForums := make([]source.Forum, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		srcForums = append(srcForums, source.Forum{ID: src.ID, Name: src.Name, FeedURL: src.FeedURL})
	}

	sched := scheduler.NewScheduler(repos.Thread, fetcher, engine, srcForums, scheduler.Config{
		RefreshInterval: time.Duration(cfg.Schedule.RefreshInterval) * time.Minute,
		MaxWorkers:      cfg.Schedule.MaxWorkers,
		WarmLimit:       cfg.Schedule.WarmLimit,
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(server.Params{
		Config:      cfg,
		Store:       server.NewRepositoryStore(repos),
		Recommender: engine,
		Telemetry:   tracker,
		Thresholds:  defaults,
		RecLimit:    cfg.Recommend.Limit,
		Version:     revision,
		Debug:       opts.Debug,
	})

	return srv.Run(ctx)
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
