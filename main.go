package main

import (
	"fmt"
	"io"
	"os"

	"go_icongen/core"
	"go_icongen/icon"
	"go_icongen/logging"
	"go_icongen/output"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	os.Exit(start())
}

// start loads configuration, sets up logging, runs the generator and
// returns the process exit code.
func start() int {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		// Use fmt here since logger isn't initialized yet
		fmt.Fprintf(os.Stderr, "Warning: could not read .env file: %v\n", err)
	}

	config, err := core.LoadConfig()
	if err != nil {
		printFailure(os.Stderr, err)
		return core.ExitCodeError
	}

	logger, err := logging.NewLogger(config.DevMode, config.LogFile, config.LogLevel)
	if err != nil {
		// The icon does not depend on the log file; keep going on stderr.
		logger = logging.NewConsoleLogger(config.DevMode, config.LogLevel)
		logger.Warn("Log file unavailable, logging to console only",
			zap.String("log_file", config.LogFile),
			zap.Error(err),
		)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(config, logger, os.Stdout); err != nil {
		logger.Error("Icon generation failed",
			zap.Error(err),
			zap.String("code", core.GetErrorCode(err)),
			zap.String("exit", core.ExitCodeName(core.ExitCodeError)),
		)
		printFailure(os.Stderr, err)
		return core.ExitCodeError
	}

	return core.ExitCodeSuccess
}

// run renders the icon once, writes it to every configured path and prints
// the completion message to out.
func run(config *core.Config, logger *logging.Logger, out io.Writer) error {
	if err := core.ValidateOutputDir(config.OutputDir); err != nil {
		return err
	}

	logger.Info("Generating icon",
		zap.String("output_dir", config.OutputDir),
		zap.Int("size", icon.CanvasSize),
		zap.String("text", icon.Text),
	)

	img := icon.NewGenerator(icon.WithLogger(logger.Named("icon").Zap())).Generate()

	writer := output.NewWriter(logger.Named("output").Zap())
	results, err := writer.WriteAll(img, config.OutputPaths())
	if err != nil {
		return err
	}

	if err := output.VerifyIdentical(results); err != nil {
		return err
	}

	logger.Info("Icon files written",
		zap.Int("files", len(results)),
		zap.Int("bytes", results[0].Bytes),
		zap.String("sha256", results[0].Checksum),
	)

	color.New(color.FgGreen, color.Bold).Fprintf(out, "✓ Icon created: %d files in %s\n", len(results), config.OutputDir)
	return nil
}

// printFailure writes err to w in red.
func printFailure(w io.Writer, err error) {
	color.New(color.FgRed, color.Bold).Fprintf(w, "✗ %v\n", err)
}
