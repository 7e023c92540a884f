package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/quantlens/quantlens/internal/common"
	"github.com/quantlens/quantlens/internal/metrics"
	"github.com/quantlens/quantlens/internal/models"
	"github.com/quantlens/quantlens/internal/services/analysis"
	"github.com/quantlens/quantlens/internal/services/chart"
)

func main() {
	configPath := flag.String("config", os.Getenv("QUANTLENS_CONFIG"), "path to TOML config file")
	inputPath := flag.String("input", "", "path to JSON input document")
	outPath := flag.String("out", "", "path to write the JSON report (default stdout)")
	chartPath := flag.String("chart", "", "optional path to write a PNG price chart")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	common.LoadVersionFromFile()
	if *showVersion {
		fmt.Println(common.GetFullVersion())
		return
	}

	config, err := common.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLogger(config.Logging.Level)
	common.PrintBanner(config, logger)

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: quantlens -input data.json [-config quantlens.toml] [-out report.json] [-chart chart.png]")
		os.Exit(2)
	}

	doc, err := readInput(*inputPath)
	if err != nil {
		logger.Error().Err(err).Str("path", *inputPath).Msg("Failed to read input document")
		os.Exit(1)
	}

	svc := analysis.NewService(logger, config.Analyzer, config.Scorer)
	result := svc.Analyze(doc.Symbol, doc.pricePoints(), doc.volumePoints())

	engine := metrics.NewEngine(logger, doc.Symbol, doc.Financials, doc.Peers)
	financials := engine.Report()

	if err := writeReport(*outPath, result, financials); err != nil {
		logger.Error().Err(err).Str("path", *outPath).Msg("Failed to write report")
		os.Exit(1)
	}

	if *chartPath != "" {
		if err := writeChart(*chartPath, doc, config); err != nil {
			// Chart rendering is best-effort; the report already exists.
			logger.Warn().Err(err).Str("path", *chartPath).Msg("Chart rendering skipped")
		} else {
			logger.Info().Str("path", *chartPath).Msg("Chart written")
		}
	}

	common.PrintShutdownBanner(logger)
}

func writeChart(path string, doc *inputDoc, config *common.Config) error {
	daily := dailySeries(doc)
	png, err := chart.RenderPriceChart(doc.Symbol, daily, config.Analyzer.BollingerPeriod, config.Analyzer.BollingerK)
	if err != nil {
		return err
	}
	return os.WriteFile(path, png, 0o644)
}

func dailySeries(doc *inputDoc) models.Series {
	s := models.Series{Timeframe: models.TimeframeDaily}
	for _, p := range doc.pricePoints() {
		s.Points = append(s.Points, models.SeriesPoint{Timestamp: p.Timestamp, Price: p.Price})
	}
	return s
}
