package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rebecca-draben/pickle-eyes/internal/adapters/ingest"
	"github.com/rebecca-draben/pickle-eyes/internal/adapters/repository"
	service "github.com/rebecca-draben/pickle-eyes/internal/app"
	"github.com/rebecca-draben/pickle-eyes/internal/config"
	"github.com/rebecca-draben/pickle-eyes/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		input       = flag.String("input", "match_data.csv", "Match data CSV file")
		mode        = flag.String("mode", "all", "Analysis to run: rank, synergy, pools or all")
		ratingsFile = flag.String("ratings", "", "Optional initial ratings CSV (player,rating)")
		minGames    = flag.Int("min-games", 0, "Override minimum joint games for synergy scoring")
		output      = flag.String("output", "", "Output file (default: stdout)")
		logLevel    = flag.String("log-level", "", "Log level override: debug, info, warn, error")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	if err := logger.SetLevelString(level); err != nil {
		log.Warn(ctx, "invalid log level; falling back to info", logger.String("log_level", level), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if *minGames > 0 {
		cfg.MinGames = *minGames
	}

	runMode, err := service.ParseMode(*mode)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		return 2
	}

	reader := ingest.NewReader()
	games, err := reader.ReadFile(ctx, *input)
	if err != nil {
		log.Error(ctx, "ingestion failed", logger.String("input", *input), logger.Error(err))
		return 1
	}

	var opts []service.Option
	if *ratingsFile != "" {
		seed, err := reader.ReadRatingsFile(ctx, *ratingsFile)
		if err != nil {
			log.Error(ctx, "failed to read initial ratings", logger.String("ratings", *ratingsFile), logger.Error(err))
			return 1
		}
		opts = append(opts, service.WithSeedRatings(seed))
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Error(ctx, "failed to create output file", logger.String("output", *output), logger.Error(err))
			return 1
		}
		defer f.Close()
		out = f
	}

	svc, err := service.New(cfg, opts...)
	if err != nil {
		log.Error(ctx, "failed to build service", logger.Error(err))
		return 1
	}

	store := repository.New(games...)
	if _, err := svc.Run(ctx, runMode, store, out); err != nil {
		log.Error(ctx, "analysis run failed", logger.Error(err))
		return 1
	}
	return 0
}
