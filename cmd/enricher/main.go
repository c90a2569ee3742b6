package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/gridironlab/playenrich/external/espn"
	"github.com/gridironlab/playenrich/internal/config"
	"github.com/gridironlab/playenrich/internal/infrastructure/mappingstore"
	"github.com/gridironlab/playenrich/internal/observability"
	"github.com/gridironlab/playenrich/internal/platform/logging"
	"github.com/gridironlab/playenrich/internal/usecase"
)

func main() {
	inputPath := flag.String("input", "", "tracking CSV file to enrich (required)")
	outputPath := flag.String("output", "", "enriched output file (default <OUTPUT_DIR>/enriched_plays.jsonl)")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -input tracking.csv [-output enriched.jsonl]\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger, *inputPath, *outputPath); err != nil {
		logger.Error("enrichment run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *logging.Logger, inputPath, outputPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return fmt.Errorf("init uptrace: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	stopProfiling, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return fmt.Errorf("init pyroscope: %w", err)
	}
	defer func() {
		if err := stopProfiling(); err != nil {
			logger.Warn("profiler stop failed", "error", err)
		}
	}()

	client := espn.NewClient(espn.ClientConfig{
		BaseURL:            cfg.ESPNBaseURL,
		Timeout:            cfg.ESPNTimeout,
		MinRequestInterval: cfg.ESPNMinRequestInterval,
		DisableCache:       !cfg.ESPNCacheEnabled,
		Logger:             logger,
	})

	mapper := usecase.NewMapperService(client, mappingstore.New(cfg.MappingCachePath), logger)
	matcher := usecase.NewMatcherService(client, mapper, logger)
	enricher := usecase.NewEnrichmentService(matcher, logger, cfg.BatchWorkers)
	ingester := usecase.NewIngestionService(logger)
	reporter := usecase.NewReportWriter(logger)

	rows, err := ingester.ReadTrackingFile(ctx, inputPath)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		logger.Warn("no tracking rows to enrich", "input", inputPath)
		return nil
	}

	result, err := enricher.EnrichBatch(ctx, rows)
	if err != nil {
		return err
	}

	if outputPath == "" {
		outputPath = filepath.Join(cfg.OutputDir, "enriched_plays.jsonl")
	}
	if err := reporter.WriteFile(ctx, outputPath, result.Enriched); err != nil {
		return err
	}

	logGameSummaries(ctx, logger, matcher, mapper)

	logger.Info("enrichment complete",
		"input", inputPath,
		"output", outputPath,
		"total", result.Total,
		"matched", result.Matched,
		"unmatched", result.Unmatched,
		"failed", result.Failed,
	)
	return nil
}

// logGameSummaries logs the provider's final header for every game the run
// touched. Info fetches ride the client's memoized summaries, so this adds
// no extra network traffic.
func logGameSummaries(ctx context.Context, logger *logging.Logger, matcher *usecase.MatcherService, mapper *usecase.MapperService) {
	mappings := mapper.Mappings()
	ids := make([]string, 0, len(mappings))
	for id := range mappings {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		mapping := mappings[id]
		info, ok := matcher.GameInfo(ctx, mapping)
		if !ok {
			continue
		}
		logger.InfoContext(ctx, "game summary",
			"game_id", mapping.SourceGameID,
			"external_game_id", mapping.ExternalGameID,
			"matchup", fmt.Sprintf("%s @ %s", info.AwayTeam, info.HomeTeam),
			"score", fmt.Sprintf("%d-%d", info.AwayScore, info.HomeScore),
			"status", info.Status,
			"stadium", info.Stadium,
		)
	}
}
