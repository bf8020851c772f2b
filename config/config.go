package config

const DefaultSlowThresholdMs float64 = 500.0
const DefaultFormat string = "table"
const DefaultMode string = "DB"

// Config - Defaults for an analysis run, read from the [analyzer] section of
// the config file and the environment. Command line flags take precedence.
type Config struct {
	SlowThresholdMs float64 `ini:"slow_ms"`
	Format          string  `ini:"format"`
	OutputFile      string  `ini:"output_file"`
	Mode            string  `ini:"mode"`

	Verbose bool `ini:"verbose"`
	Quiet   bool `ini:"quiet"`
}
