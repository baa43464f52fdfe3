// Command roomfuse runs the measurement fusion engine over a capture file.
//
// The input is a JSON document holding up to four per-source candidate
// room lists plus declared building metadata; the output is the fused
// building result. Capture pipelines (floor-plan analysis, AR, voice,
// photos) produce the input upstream of this tool.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/roomsense-data/roomfusion/internal/config"
	"github.com/roomsense-data/roomfusion/internal/fusion"
	"github.com/roomsense-data/roomfusion/internal/report"
	"github.com/roomsense-data/roomfusion/internal/standards"
	"github.com/roomsense-data/roomfusion/internal/version"
)

func main() {
	var inputPath string
	var outputPath string
	var configPath string
	var standardsDB string
	var reportPath string
	var pretty bool
	var verbose bool
	var showVersion bool

	flag.StringVar(&inputPath, "input", "-", "capture JSON file ('-' for stdin)")
	flag.StringVar(&outputPath, "output", "-", "result JSON file ('-' for stdout)")
	flag.StringVar(&configPath, "config", "", "optional tuning config JSON file")
	flag.StringVar(&standardsDB, "standards-db", "", "optional room standards sqlite db (default: built-in catalog)")
	flag.StringVar(&reportPath, "report", "", "optional HTML chart report output file")
	flag.BoolVar(&pretty, "pretty", false, "indent the result JSON")
	flag.BoolVar(&verbose, "v", false, "verbose (debug) logging")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("roomfuse %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}

	logger, err := newLogger(verbose)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	cfg := fusion.DefaultConfig()
	if configPath != "" {
		tuning, err := config.LoadTuningConfig(configPath)
		if err != nil {
			logger.Fatal("load tuning config", zap.Error(err))
		}
		tuning.Apply(&cfg)
	}
	if standardsDB != "" {
		catalog, err := standards.Load(standardsDB)
		if err != nil {
			logger.Fatal("load standards db", zap.Error(err))
		}
		cfg.Standards = catalog
		logger.Info("loaded standards catalog",
			zap.String("path", standardsDB),
			zap.Int("room_types", catalog.Len()),
		)
	}

	input, err := readInput(inputPath)
	if err != nil {
		logger.Fatal("read input", zap.Error(err))
	}

	engine := fusion.NewEngine(cfg, logger)
	result, err := engine.Fuse(input)
	if err != nil {
		// Catastrophic failure: emit the failed result so callers still
		// get a well-formed {success:false} document, then exit non-zero.
		writeResult(outputPath, result, pretty, logger)
		logger.Fatal("fusion failed", zap.Error(err))
	}

	writeResult(outputPath, result, pretty, logger)

	if reportPath != "" {
		f, err := os.Create(reportPath)
		if err != nil {
			logger.Fatal("create report file", zap.Error(err))
		}
		defer f.Close()
		if err := report.WriteChart(f, result); err != nil {
			logger.Fatal("render report", zap.Error(err))
		}
		logger.Info("wrote fusion report", zap.String("path", reportPath))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func readInput(path string) (*fusion.Input, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read capture file: %w", err)
	}

	var input fusion.Input
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("parse capture file: %w", err)
	}
	return &input, nil
}

func writeResult(path string, result *fusion.Result, pretty bool, logger *zap.Logger) {
	if result == nil {
		return
	}

	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		logger.Fatal("encode result", zap.Error(err))
	}
	data = append(data, '\n')

	if path == "-" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Fatal("write result file", zap.Error(err))
	}
}
