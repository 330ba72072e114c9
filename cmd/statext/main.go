package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quantfold/statext/internal/app"
	"github.com/quantfold/statext/internal/statement"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		pdfPath     string
		targetYear  string
		blocksFile  string
		awsRegion   string
		cacheDir    string
		cacheMaxAge time.Duration
		cacheClear  bool
		configPath  string
		verbose     bool
	)

	flag.StringVar(&pdfPath, "pdf", "", "Path to the statement PDF")
	flag.StringVar(&targetYear, "target-year", "", "Target year column header, e.g. 2024")
	flag.StringVar(&blocksFile, "blocks.file", os.Getenv("BLOCKS_FILE"), "Path to a saved AnalyzeDocument JSON response to replay instead of calling the service")
	flag.StringVar(&awsRegion, "aws.region", os.Getenv("AWS_REGION"), "AWS region for the Textract call")
	flag.StringVar(&cacheDir, "cache.dir", ".statext-cache", "Analysis cache directory path")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Max age for cache entries before purge (e.g. 24h); 0 disables")
	flag.BoolVar(&cacheClear, "cache.clear", false, "Clear cache directory before run")
	flag.StringVar(&configPath, "config", "", "Optional YAML or JSON config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		PDFPath:     pdfPath,
		TargetYear:  targetYear,
		BlocksFile:  blocksFile,
		AWSRegion:   awsRegion,
		CacheDir:    cacheDir,
		CacheMaxAge: cacheMaxAge,
		CacheClear:  cacheClear,
		Verbose:     verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("config file unreadable")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
		if cfg.Verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	ctx := context.Background()
	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("init failed")
		os.Exit(1)
	}

	// Exit code policy: 1 for input and service failures, 2 for resolution
	// misses with the stage reason on stderr.
	var doc []byte
	if cfg.BlocksFile == "" {
		doc, err = app.ReadDocument(cfg.PDFPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading PDF: %v\n", err)
			os.Exit(1)
		}
	}

	res, err := a.Run(ctx, doc)
	if err != nil {
		if statement.IsResolutionMiss(err) {
			fmt.Fprintln(os.Stderr, "Failed to extract Revenue.")
			fmt.Fprintf(os.Stderr, "Reason: %v\n", err)
			os.Exit(2)
		}
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}

	fmt.Printf("Extracted Revenue: %s\n", res.Value)
	fmt.Printf("Debug: %s\n", res.Diagnostic())
}
