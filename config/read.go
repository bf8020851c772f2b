package config

import (
	"os"
	"strconv"

	"github.com/go-ini/ini"
	"github.com/pkg/errors"

	"github.com/tracelog/analyzer/util"
)

const SectionName = "analyzer"

func getDefaultConfig() *Config {
	return &Config{
		SlowThresholdMs: DefaultSlowThresholdMs,
		Format:          DefaultFormat,
		Mode:            DefaultMode,
	}
}

func applyEnv(config *Config) error {
	if slowMs := os.Getenv("TRACE_ANALYZER_SLOW_MS"); slowMs != "" {
		value, err := strconv.ParseFloat(slowMs, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid TRACE_ANALYZER_SLOW_MS %q", slowMs)
		}
		config.SlowThresholdMs = value
	}
	if format := os.Getenv("TRACE_ANALYZER_FORMAT"); format != "" {
		config.Format = format
	}
	if outputFile := os.Getenv("TRACE_ANALYZER_OUTPUT_FILE"); outputFile != "" {
		config.OutputFile = outputFile
	}
	if verbose := os.Getenv("TRACE_ANALYZER_VERBOSE"); verbose != "" && verbose != "0" {
		config.Verbose = true
	}
	return nil
}

// Read - Loads defaults from filename (if it exists) and the environment
func Read(logger *util.Logger, filename string) (Config, error) {
	config := getDefaultConfig()

	if filename != "" {
		if _, err := os.Stat(filename); err == nil {
			configFile, err := ini.Load(filename)
			if err != nil {
				return Config{}, errors.Wrapf(err, "could not load config file %s", filename)
			}
			if !configFile.HasSection(SectionName) {
				logger.PrintWarning("Config file %s has no [%s] section, using defaults", filename, SectionName)
			}
			err = configFile.Section(SectionName).MapTo(config)
			if err != nil {
				return Config{}, errors.Wrapf(err, "could not read [%s] section of %s", SectionName, filename)
			}
		} else if os.IsNotExist(err) {
			logger.PrintVerbose("Config file %s not found, using defaults", filename)
		} else {
			return Config{}, errors.Wrapf(err, "could not access config file %s", filename)
		}
	}

	if err := applyEnv(config); err != nil {
		return Config{}, err
	}

	if config.SlowThresholdMs < 0 {
		return Config{}, errors.Errorf("slow query threshold must not be negative, got %v", config.SlowThresholdMs)
	}

	return *config, nil
}
