package core

import (
	"path/filepath"
	"strings"
)

// Environment variable names read by LoadConfig.
const (
	EnvOutputDir = "ICON_OUTPUT_DIR"
	EnvLogFile   = "ICON_LOG_FILE"
	EnvDevMode   = "DEV_MODE"
	EnvLogLevel  = "LOG_LEVEL"
)

// DefaultOutputDir is the Xcode asset catalog the icon was first generated for.
const DefaultOutputDir = "/Users/matt/Documents/app/PDFtts/PDFtts/Assets.xcassets/AppIcon.appiconset/"

// DefaultLogFile is the log file used when ICON_LOG_FILE is unset.
const DefaultLogFile = "icongen.log"

// OutputFileNames are the files written into the output directory, in order.
// They all receive the same PNG bytes.
var OutputFileNames = []string{
	"doc-icon-parts-center-image@2x.png",
	"doc-icon-parts-center-image@2x 1.png",
	"doc-icon-parts-center-image@2x 2.png",
}

// Config holds where the generator writes and how it logs.
// The icon itself (size, colours, text, font size) is not configurable.
type Config struct {
	OutputDir string
	LogFile   string
	DevMode   bool
	LogLevel  string // empty means the mode's default
}

// LoadConfig reads configuration from the environment. Callers load .env
// beforehand with godotenv.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		OutputDir: strings.TrimSpace(GetEnvOrDefault(EnvOutputDir, DefaultOutputDir)),
		LogFile:   strings.TrimSpace(GetEnvOrDefault(EnvLogFile, DefaultLogFile)),
		DevMode:   ParseBoolEnv(EnvDevMode, false),
		LogLevel:  strings.TrimSpace(GetEnvOrDefault(EnvLogLevel, "")),
	}

	if cfg.OutputDir == "" {
		return nil, ErrMissingConfig(EnvOutputDir)
	}
	if cfg.LogFile == "" {
		return nil, ErrMissingConfig(EnvLogFile)
	}

	return cfg, nil
}

// OutputPaths returns the full path of every output file.
func (c *Config) OutputPaths() []string {
	paths := make([]string, 0, len(OutputFileNames))
	for _, name := range OutputFileNames {
		paths = append(paths, filepath.Join(c.OutputDir, name))
	}
	return paths
}
